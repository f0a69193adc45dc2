package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{"header and status", 40, ContentOpts{HeaderHeight: 1, StatusHeight: 1}, 38},
		{"status only", 40, ContentOpts{StatusHeight: 1}, 39},
		{"nothing else", 40, ContentOpts{}, 40},
		{"never negative", 1, ContentOpts{HeaderHeight: 1, StatusHeight: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentHeight(tt.windowHeight, tt.opts))
		})
	}
}

func TestPanelSize(t *testing.T) {
	opts := ContentOpts{HeaderHeight: 1, StatusHeight: 1}

	w, h := PanelSize(80, 24, opts)
	assert.Equal(t, 78, w)
	assert.Equal(t, 20, h)

	w, h = PanelSize(1, 2, opts)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestInnerSize(t *testing.T) {
	w, h := InnerSize(80, 24, ContentOpts{HeaderHeight: 1, StatusHeight: 1})
	assert.Equal(t, 76, w)
	assert.Equal(t, 20, h)
}

func TestIsCompact(t *testing.T) {
	assert.True(t, IsCompact(CompactHeight-1))
	assert.False(t, IsCompact(CompactHeight))
}
