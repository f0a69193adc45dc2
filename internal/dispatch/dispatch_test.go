package dispatch

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cheatsheet/internal/value"
)

func TestInvocation_String(t *testing.T) {
	tests := []struct {
		name     string
		inv      Invocation
		argsJSON string
		expected string
	}{
		{
			name:     "no args",
			inv:      Invocation{Command: "save"},
			expected: "save",
		},
		{
			name:     "empty args object",
			inv:      Invocation{Command: "save", Args: value.MustParse(`{}`)},
			expected: "save",
		},
		{
			name:     "args keep source order",
			inv:      Invocation{Command: "move", Args: value.MustParse(`{"by": "lines", "forward": true}`)},
			argsJSON: `{"by":"lines","forward":true}`,
			expected: `move {"by":"lines","forward":true}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.argsJSON, tt.inv.ArgsJSON())
			assert.Equal(t, tt.expected, tt.inv.String())
		})
	}
}

type call struct {
	name string
	args []string
}

func TestExecExecutor(t *testing.T) {
	var calls []call
	e := NewExecExecutor(nil)
	e.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		calls = append(calls, call{name, args})
		return nil, nil
	}

	require.NoError(t, e.Execute(context.Background(), Invocation{Command: "save"}))
	require.NoError(t, e.Execute(context.Background(), Invocation{
		Command: "show_panel",
		Args:    value.MustParse(`{"panel": "console"}`),
	}))

	require.Len(t, calls, 2)
	assert.Equal(t, call{"subl", []string{"--command", "save"}}, calls[0])
	assert.Equal(t, call{"subl", []string{"--command", `show_panel {"panel":"console"}`}}, calls[1])
}

func TestExecExecutor_Errors(t *testing.T) {
	e := NewExecExecutor([]string{"editor", "{command}"})
	e.run = func(context.Context, string, ...string) ([]byte, error) {
		return []byte("  no such command\n"), errors.New("exit status 2")
	}

	err := e.Execute(context.Background(), Invocation{Command: "bogus"})
	require.Error(t, err)
	assert.Equal(t, "editor: exit status 2: no such command", err.Error())

	require.ErrorIs(t, e.Execute(context.Background(), Invocation{}), ErrNoCommand)

	err = e.Execute(context.Background(), Invocation{Command: "x", Args: value.MustParse(`[1]`)})
	require.ErrorContains(t, err, "args must be an object")

	empty := &ExecExecutor{Argv: []string{"{args}"}}
	require.ErrorContains(t, empty.Execute(context.Background(), Invocation{Command: "x"}), "empty exec command")
}

func TestExecExecutor_Expand(t *testing.T) {
	e := NewExecExecutor([]string{"code", "--run={command}", "{args}"})
	got := e.Expand(Invocation{Command: "fold", Args: value.MustParse(`{"level": 2}`)})
	assert.Equal(t, []string{"code", "--run=fold", `{"level":2}`}, got)
}

func TestClipboardExecutor(t *testing.T) {
	var system, osc string
	c := &ClipboardExecutor{
		writeSystem: func(s string) error { system = s; return nil },
		writeOSC52:  func(s string) error { osc = s; return nil },
	}
	require.NoError(t, c.Execute(context.Background(), Invocation{Command: "save"}))
	assert.Equal(t, "save", system)
	assert.Empty(t, osc)

	c.writeSystem = func(string) error { return errors.New("no display") }
	require.NoError(t, c.Copy("fallback"))
	assert.Equal(t, "fallback", osc)

	c.writeOSC52 = func(string) error { return errors.New("dumb terminal") }
	err := c.Copy("nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.Contains(t, err.Error(), "dumb terminal")
}

func TestWriteOSC52Sequence(t *testing.T) {
	var plain, tmux, screen bytes.Buffer
	require.NoError(t, writeOSC52Sequence(&plain, "hi", "xterm-256color", false))
	require.NoError(t, writeOSC52Sequence(&tmux, "hi", "xterm-256color", true))
	require.NoError(t, writeOSC52Sequence(&screen, "hi", "screen", false))

	assert.Contains(t, plain.String(), "\x1b]52;c;aGk=")
	assert.NotEqual(t, plain.String(), tmux.String())
	assert.NotEqual(t, plain.String(), screen.String())
}

func TestPrintExecutor(t *testing.T) {
	var buf bytes.Buffer
	p := PrintExecutor{W: &buf}
	require.NoError(t, p.Execute(context.Background(), Invocation{Command: "fold_by_level", Args: value.MustParse(`{"level": 1}`)}))
	assert.Equal(t, "fold_by_level {\"level\":1}\n", buf.String())
}

type fakeRecorder struct {
	records [][2]string
	err     error
}

func (f *fakeRecorder) Record(command, args string) error {
	f.records = append(f.records, [2]string{command, args})
	return f.err
}

type failingExecutor struct{}

func (failingExecutor) Execute(context.Context, Invocation) error { return errors.New("boom") }

func TestRecording(t *testing.T) {
	var buf bytes.Buffer
	rec := &fakeRecorder{}
	r := Recording{Executor: PrintExecutor{W: &buf}, Recorder: rec}

	require.NoError(t, r.Execute(context.Background(), Invocation{Command: "save"}))
	assert.Equal(t, [][2]string{{"save", ""}}, rec.records)

	r.Executor = failingExecutor{}
	require.Error(t, r.Execute(context.Background(), Invocation{Command: "save"}))
	assert.Len(t, rec.records, 1, "failed invocations are not recorded")

	var logs bytes.Buffer
	rec.err = errors.New("disk full")
	r = Recording{Executor: PrintExecutor{W: &buf}, Recorder: rec, Logger: log.New(&logs)}
	require.NoError(t, r.Execute(context.Background(), Invocation{Command: "undo"}))
	assert.Contains(t, logs.String(), "disk full")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	for _, kind := range []string{"", "exec", "clipboard", "print"} {
		e, err := New(kind, nil, &buf)
		require.NoError(t, err, kind)
		assert.NotNil(t, e)
	}
	_, err := New("teleport", nil, &buf)
	require.Error(t, err)
}
