package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/cheatsheet/internal/db"
)

// PickerState is restored when the picker opens again.
type PickerState struct {
	Query           string
	SelectedCommand string
}

func getPicker(db *sql.DB) (*PickerState, error) {
	row := db.QueryRow(`SELECT query, selected_command FROM picker_state WHERE id = 1`)

	var state PickerState
	var selected sql.NullString
	err := row.Scan(&state.Query, &selected)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	state.SelectedCommand = dbutil.NullStringValue(selected)
	return &state, nil
}

func savePicker(db *sql.DB, state PickerState) error {
	_, err := db.Exec(`
		INSERT INTO picker_state (id, query, selected_command)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			query = excluded.query,
			selected_command = excluded.selected_command
	`, state.Query, dbutil.NullString(state.SelectedCommand))
	return err
}
