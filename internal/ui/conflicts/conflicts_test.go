package conflicts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/ui/testutil"
)

func newTestConflicts(rows []sheet.ConflictRow) (*Model, *testutil.PopupHarness) {
	m := New(rows)
	m.SetSize(80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func manyRows(n int) []sheet.ConflictRow {
	rows := make([]sheet.ConflictRow, n)
	for i := range rows {
		rows[i] = sheet.ConflictRow{
			Combo:       fmt.Sprintf("ctrl+%d", i),
			Description: "copy, duplicate_line",
		}
	}
	return rows
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	msg := h.LastAction()
	require.NotNil(t, msg)
	assert.Equal(t, "conflicts", msg.Source)
	assert.IsType(t, Close{}, msg.Action)
}

func TestConflicts_Close(t *testing.T) {
	_, h := newTestConflicts(manyRows(1))
	h.SendKey("q")
	assertClosed(t, h)

	_, h = newTestConflicts(manyRows(1))
	h.SendEscape()
	assertClosed(t, h)

	_, h = newTestConflicts(manyRows(1))
	h.SendEnter()
	assertClosed(t, h)
}

func TestConflicts_ViewListsCombos(t *testing.T) {
	_, h := newTestConflicts([]sheet.ConflictRow{
		{Combo: "ctrl+shift+d", Description: "duplicate_line, find_under_expand"},
	})
	assert.True(t, h.ViewContains("Key Conflicts (1 combo)"))
	line := testutil.FindLine(h.View(), "ctrl+shift+d")
	assert.Contains(t, line, "⌃⇧D")
	assert.Contains(t, line, "duplicate_line, find_under_expand")
	assert.True(t, h.ViewContains("esc close"))
	assert.False(t, h.ViewContains("j/k scroll"))
}

func TestConflicts_Empty(t *testing.T) {
	_, h := newTestConflicts(nil)
	assert.True(t, h.ViewContains("No conflicting key bindings"))
	assert.True(t, h.ViewContains("Key Conflicts (0 combos)"))
	assert.False(t, h.ViewContains("comboes"))
}

func TestConflicts_Scroll(t *testing.T) {
	m, h := newTestConflicts(manyRows(30))
	assert.True(t, h.ViewContains("Key Conflicts (30 combos)"))
	assert.True(t, h.ViewContains("j/k scroll"))
	assert.True(t, h.ViewContains("ctrl+0 "))

	h.SendDown()
	h.SendKey("j")
	assert.Equal(t, 2, m.scrollOffset)
	assert.False(t, h.ViewContains("ctrl+0 "))

	h.SendKey("k")
	assert.Equal(t, 1, m.scrollOffset)

	h.SendKey("G")
	assert.Equal(t, m.maxScroll(), m.scrollOffset)
	assert.True(t, h.ViewContains("ctrl+29"))
	h.SendDown()
	assert.Equal(t, m.maxScroll(), m.scrollOffset)

	h.SendKey("g")
	assert.Zero(t, m.scrollOffset)
	h.SendUp()
	assert.Zero(t, m.scrollOffset)
}

func TestConflicts_SetRowsClampsScroll(t *testing.T) {
	m, h := newTestConflicts(manyRows(30))
	h.SendKey("G")
	m.SetRows(manyRows(2))
	assert.Zero(t, m.scrollOffset)
}
