package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLines(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []Line
	}{
		{
			name:  "empty",
			value: "",
			want:  nil,
		},
		{
			name:  "single plain line",
			value: "Hello",
			want:  []Line{{Text: "Hello"}},
		},
		{
			name:  "bullet prefixes stripped",
			value: "• First\n- Second\nPlain",
			want: []Line{
				{Text: "First", Bullet: true},
				{Text: "Second", Bullet: true},
				{Text: "Plain"},
			},
		},
		{
			name:  "whitespace trimmed, blank lines kept out",
			value: "  spaced  \n\n• padded bullet ",
			want: []Line{
				{Text: "spaced"},
				{Text: "padded bullet", Bullet: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayLines(tt.value))
		})
	}
}

func TestIsPreviewURL(t *testing.T) {
	assert.True(t, IsPreviewURL(previewScheme+"abc"))
	assert.False(t, IsPreviewURL("/api/uploads/abc.png"))
	assert.False(t, IsPreviewURL("https://example.com/x.png"))
	assert.False(t, IsPreviewURL(""))
}

func TestPreviewSlot_SupersededRefIsReleased(t *testing.T) {
	var slot previewSlot

	first := slot.acquire([]byte{1})
	second := slot.acquire([]byte{2})

	assert.True(t, first.Released())
	assert.False(t, second.Released())
	assert.NotEqual(t, first.URL(), second.URL())

	slot.release()
	assert.True(t, second.Released())

	// release is idempotent and safe on an empty slot.
	slot.release()
}
