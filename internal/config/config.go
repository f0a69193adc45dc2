package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

const appName = "cheatsheet"

// Executor names accepted by the executor option.
const (
	ExecutorExec      = "exec"
	ExecutorClipboard = "clipboard"
	ExecutorPrint     = "print"
)

type Config struct {
	PackagesPath    string   `koanf:"packages_path" toml:"packages_path"`       // editor packages directory to scan
	Platform        string   `koanf:"platform" toml:"platform"`                 // "OSX", "Linux", "Windows"; empty = current OS
	IgnoredPackages []string `koanf:"ignored_packages" toml:"ignored_packages"` // package names never scanned
	GlobalSettings  string   `koanf:"global_settings" toml:"global_settings"`   // editor preferences file with its own ignored_packages

	SingleMaxNums   int  `koanf:"single_max_nums" toml:"single_max_nums"`     // max bindings per package (<= 0 = unlimited)
	IgnoreSingleKey bool `koanf:"ignore_single_key" toml:"ignore_single_key"` // hide bindings that are a single unmodified key
	ShowContext     bool `koanf:"show_context" toml:"show_context"`           // append context conditions to subtitles

	// Conflict detection
	IgnoreSingleKeyConflicts bool `koanf:"ignore_single_key_conflicts" toml:"ignore_single_key_conflicts"`

	// Command dispatch
	Executor    string   `koanf:"executor" toml:"executor"`         // "exec", "clipboard" or "print"
	ExecCommand []string `koanf:"exec_command" toml:"exec_command"` // argv template, {command} and {args} substituted

	// Extra commands listed after scanned bindings
	DefaultCommands []DefaultCommand `koanf:"default_commands" toml:"default_commands"`

	LogLevel string `koanf:"log_level" toml:"log_level"` // debug, info, warn, error
}

// DefaultCommand is a user-declared entry shown in the picker alongside
// scanned bindings.
type DefaultCommand struct {
	Name    string         `koanf:"name" toml:"name"`
	Command string         `koanf:"command" toml:"command"`
	Keys    []string       `koanf:"keys" toml:"keys"`
	Args    map[string]any `koanf:"args" toml:"args,omitempty"`
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		PackagesPath: defaultPackagesPath(runtime.GOOS),
		Executor:     ExecutorExec,
		ExecCommand:  defaultExecCommand(),
		LogLevel:     "warn",
	}
}

func defaultExecCommand() []string {
	return []string{"subl", "--command", "{command} {args}"}
}

// Load reads the user and working-directory config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order (last wins). Missing files
// are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	// Slices are decoded into an empty value so a shorter user list never
	// keeps trailing default elements.
	cfg := Default()
	cfg.ExecCommand = nil
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if !k.Exists("exec_command") {
		cfg.ExecCommand = defaultExecCommand()
	}

	cfg.PackagesPath = expandPath(cfg.PackagesPath)
	if cfg.GlobalSettings == "" && cfg.PackagesPath != "" {
		cfg.GlobalSettings = filepath.Join(cfg.PackagesPath, "User", "Preferences.sublime-settings")
	}
	cfg.GlobalSettings = expandPath(cfg.GlobalSettings)
	cfg.Executor = strings.ToLower(strings.TrimSpace(cfg.Executor))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration values that cannot work.
func (c *Config) Validate() error {
	switch c.Executor {
	case ExecutorExec:
		if len(c.ExecCommand) == 0 || c.ExecCommand[0] == "" {
			return errors.New("exec_command must name a program when executor is \"exec\"")
		}
	case ExecutorClipboard, ExecutorPrint:
	default:
		return fmt.Errorf("unknown executor %q (want exec, clipboard or print)", c.Executor)
	}
	for i, dc := range c.DefaultCommands {
		if dc.Command == "" {
			return fmt.Errorf("default_commands[%d]: command is required", i)
		}
	}
	return nil
}

// Ignored returns the union of ignored_packages and the editor's own
// ignored_packages setting from GlobalSettings. A missing or unreadable
// preferences file contributes nothing.
func (c *Config) Ignored() []string {
	ignored := append([]string(nil), c.IgnoredPackages...)
	global, err := LoadGlobalIgnored(c.GlobalSettings)
	if err != nil {
		return ignored
	}
	return append(ignored, global...)
}

// LoadGlobalIgnored reads ignored_packages from an editor preferences
// file, which may contain comments and trailing commas.
func LoadGlobalIgnored(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	clean := jsonc.ToJSON(data)
	if !gjson.ValidBytes(clean) {
		return nil, fmt.Errorf("%s: invalid settings file", path)
	}
	var names []string
	for _, r := range gjson.GetBytes(clean, "ignored_packages").Array() {
		if r.Type == gjson.String && r.Str != "" {
			names = append(names, r.Str)
		}
	}
	return names, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/cheatsheet/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./cheatsheet.toml (pwd, highest priority)
		appName + ".toml",
	}
}

func defaultPackagesPath(goos string) string {
	switch goos {
	case "darwin":
		return filepath.Join(xdg.ConfigHome, "Sublime Text", "Packages")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Sublime Text", "Packages")
		}
		return filepath.Join(xdg.ConfigHome, "Sublime Text", "Packages")
	default:
		return filepath.Join(xdg.ConfigHome, "sublime-text", "Packages")
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogFile returns the path of the log file used while the TUI owns the
// terminal.
func LogFile() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
