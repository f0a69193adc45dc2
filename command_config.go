package main

import (
	"flag"
	"io"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/llehouerou/cheatsheet/internal/config"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

func NewConfigCommand(stdout, stderr io.Writer, loadConfig configLoader) *ConfigCommand {
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", configFlagUsage)
	defaults := fs.Bool("default", false, "print default config values")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if !*defaults {
		loaded, err := c.loadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	return writeConfigOutput(c.stdout, cfg)
}

func writeConfigOutput(w io.Writer, cfg *config.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
