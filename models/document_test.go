package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Accessors(t *testing.T) {
	doc := Document{
		"title": "Hello",
		"count": 3,
		"items": []any{"a", "b", 7},
		"cards": []any{
			map[string]any{"name": "x"},
			"not a document",
		},
	}

	assert.Equal(t, "Hello", doc.String("title"))
	assert.Equal(t, "", doc.String("count"), "non-string values read as empty")
	assert.Equal(t, "", doc.String("missing"))

	// Non-string elements degrade to "" instead of being dropped, so
	// indexes keep lining up with the stored array.
	assert.Equal(t, []string{"a", "b", ""}, doc.Strings("items"))

	items := doc.Items("cards")
	require.Len(t, items, 2)
	assert.Equal(t, "x", items[0].String("name"))
	assert.Empty(t, items[1])
}

func TestDocument_CloneIsDeep(t *testing.T) {
	original := Document{
		"title": "A",
		"nested": map[string]any{
			"image": "/api/uploads/a.png",
		},
		"items": []any{
			map[string]any{"q": "question"},
		},
	}

	clone := original.Clone()
	clone["title"] = "B"
	clone["nested"].(map[string]any)["image"] = "poisoned"
	clone["items"].([]any)[0].(map[string]any)["q"] = "poisoned"

	assert.Equal(t, "A", original.String("title"))
	assert.Equal(t, "/api/uploads/a.png", original["nested"].(map[string]any)["image"])
	assert.Equal(t, "question", original["items"].([]any)[0].(map[string]any)["q"])
}

func TestDocument_CloneNil(t *testing.T) {
	var doc Document
	assert.Nil(t, doc.Clone())
}

func TestDocument_Normalize(t *testing.T) {
	doc := Document{
		"count": 3,
		"items": []string{"a"},
	}

	normalized, err := doc.Normalize()
	require.NoError(t, err)

	// JSON round-trip canonicalizes Go types to JSON types.
	assert.Equal(t, float64(3), normalized["count"])
	assert.Equal(t, []any{"a"}, normalized["items"])
}
