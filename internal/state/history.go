package state

import (
	"context"
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/cheatsheet/internal/db"
)

// MaxHistory is the number of invocations kept; older rows are pruned on
// every Record.
const MaxHistory = 1000

// HistoryEntry aggregates the invocations of one command and argument set.
type HistoryEntry struct {
	Command  string
	Args     string // compact JSON, "" when none
	Count    int
	LastUsed time.Time
}

// Record appends an invocation.
func (m *Manager) Record(command, args string) error {
	return dbutil.WithTx(context.Background(), m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			`INSERT INTO history (command, args, invoked_at) VALUES (?, ?, ?)`,
			command, args, m.now().UnixMilli(),
		); err != nil {
			return err
		}
		_, err := tx.Exec(`
			DELETE FROM history WHERE id NOT IN (
				SELECT id FROM history ORDER BY invoked_at DESC, id DESC LIMIT ?
			)
		`, MaxHistory)
		return err
	})
}

// Recent returns up to limit distinct invocations, most recently used
// first. limit <= 0 returns all of them.
func (m *Manager) Recent(limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := m.db.Query(`
		SELECT command, args, COUNT(*), MAX(invoked_at) AS last
		FROM history
		GROUP BY command, args
		ORDER BY last DESC, MAX(id) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var last int64
		if err := rows.Scan(&e.Command, &e.Args, &e.Count, &last); err != nil {
			return nil, err
		}
		e.LastUsed = time.UnixMilli(last)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Counts returns how often each command was invoked, regardless of args.
func (m *Manager) Counts() (map[string]int, error) {
	rows, err := m.db.Query(`SELECT command, COUNT(*) FROM history GROUP BY command`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var cmd string
		var n int
		if err := rows.Scan(&cmd, &n); err != nil {
			return nil, err
		}
		out[cmd] = n
	}
	return out, rows.Err()
}

// Clear deletes all recorded invocations.
func (m *Manager) Clear() error {
	_, err := m.db.Exec(`DELETE FROM history`)
	return err
}
