// internal/state/mock.go
package state

import (
	"database/sql"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	picker  *PickerState
	history []HistoryEntry
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SavePicker(state PickerState) { m.picker = &state }

func (m *Mock) GetPicker() (*PickerState, error) {
	return m.picker, nil
}

func (m *Mock) Record(command, args string) error {
	m.history = append([]HistoryEntry{{Command: command, Args: args, Count: 1, LastUsed: time.Now()}}, m.history...)
	return nil
}

func (m *Mock) Recent(limit int) ([]HistoryEntry, error) {
	if limit > 0 && limit < len(m.history) {
		return m.history[:limit], nil
	}
	return m.history, nil
}

func (m *Mock) Counts() (map[string]int, error) {
	out := make(map[string]int)
	for _, e := range m.history {
		out[e.Command] += e.Count
	}
	return out, nil
}

func (m *Mock) Clear() error {
	m.history = nil
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
