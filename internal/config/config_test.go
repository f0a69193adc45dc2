//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/packages",
			expected: filepath.Join(home, "packages"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.config/sublime-text/Packages",
			expected: filepath.Join(home, ".config", "sublime-text", "Packages"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/opt/sublime/Packages",
			expected: "/opt/sublime/Packages",
		},
		{
			name:     "relative path unchanged",
			input:    "Packages/User",
			expected: "Packages/User",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "cheatsheet", "config.toml"), paths[0])
	assert.Equal(t, "cheatsheet.toml", paths[1])
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, ExecutorExec, cfg.Executor)
	assert.Equal(t, []string{"subl", "--command", "{command} {args}"}, cfg.ExecCommand)
	assert.NotEmpty(t, cfg.PackagesPath)
	assert.Equal(t, filepath.Join(cfg.PackagesPath, "User", "Preferences.sublime-settings"), cfg.GlobalSettings)
	assert.Equal(t, 0, cfg.SingleMaxNums)
	assert.False(t, cfg.IgnoreSingleKey)
}

func TestLoadFrom_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
packages_path = "/tmp/pkgs"
platform = "Linux"
ignored_packages = ["Vintage", "Markdown"]
single_max_nums = 10
ignore_single_key = true
show_context = true
ignore_single_key_conflicts = true
executor = "Print"
log_level = "debug"

[[default_commands]]
name = "Open Console"
command = "show_panel"
keys = ["ctrl+shift+c"]
[default_commands.args]
panel = "console"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pkgs", cfg.PackagesPath)
	assert.Equal(t, "Linux", cfg.Platform)
	assert.Equal(t, []string{"Vintage", "Markdown"}, cfg.IgnoredPackages)
	assert.Equal(t, 10, cfg.SingleMaxNums)
	assert.True(t, cfg.IgnoreSingleKey)
	assert.True(t, cfg.ShowContext)
	assert.True(t, cfg.IgnoreSingleKeyConflicts)
	assert.Equal(t, ExecutorPrint, cfg.Executor)
	assert.Equal(t, "debug", cfg.LogLevel)

	require.Len(t, cfg.DefaultCommands, 1)
	dc := cfg.DefaultCommands[0]
	assert.Equal(t, "Open Console", dc.Name)
	assert.Equal(t, "show_panel", dc.Command)
	assert.Equal(t, []string{"ctrl+shift+c"}, dc.Keys)
	assert.Equal(t, "console", dc.Args["panel"])
}

func TestLoadFrom_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.toml", "platform = \"OSX\"\nshow_context = true\n")
	second := writeFile(t, dir, "b.toml", "platform = \"Windows\"\n")

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)
	assert.Equal(t, "Windows", cfg.Platform)
	assert.True(t, cfg.ShowContext)
}

func TestLoadFrom_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFrom(writeFile(t, dir, "bad.toml", "platform = ["))
	require.Error(t, err)

	_, err = LoadFrom(writeFile(t, dir, "exec.toml", "executor = \"teleport\"\n"))
	require.ErrorContains(t, err, "unknown executor")

	_, err = LoadFrom(writeFile(t, dir, "argv.toml", "exec_command = [\"\"]\n"))
	require.ErrorContains(t, err, "exec_command")

	_, err = LoadFrom(writeFile(t, dir, "dc.toml", "[[default_commands]]\nname = \"x\"\n"))
	require.ErrorContains(t, err, "default_commands[0]")
}

func TestLoadGlobalIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Preferences.sublime-settings", `{
	// comments are allowed
	"font_size": 12,
	"ignored_packages": ["Vintage", "Six", /* inline */],
}`)

	names, err := LoadGlobalIgnored(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vintage", "Six"}, names)

	names, err = LoadGlobalIgnored(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Nil(t, names)

	_, err = LoadGlobalIgnored(writeFile(t, dir, "broken", `{"ignored_packages": [`))
	require.Error(t, err)
}

func TestIgnored(t *testing.T) {
	dir := t.TempDir()
	global := writeFile(t, dir, "prefs", `{"ignored_packages": ["Vintage"]}`)

	cfg := &Config{IgnoredPackages: []string{"Markdown"}, GlobalSettings: global}
	assert.Equal(t, []string{"Markdown", "Vintage"}, cfg.Ignored())

	cfg.GlobalSettings = filepath.Join(dir, "absent")
	assert.Equal(t, []string{"Markdown"}, cfg.Ignored())
}

func TestDefaultPackagesPath(t *testing.T) {
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "sublime-text", "Packages"), defaultPackagesPath("linux"))
	assert.Equal(t, filepath.Join(xdg.ConfigHome, "Sublime Text", "Packages"), defaultPackagesPath("darwin"))
}
