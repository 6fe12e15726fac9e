package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assana/cms/models"
)

func TestListEditor_EveryOpEmitsWholeList(t *testing.T) {
	var emitted [][]string
	e := NewListEditor([]string{"a", "b"}, func(items []string) {
		emitted = append(emitted, items)
	})

	e.Add()
	e.UpdateItem(2, "c")
	e.MoveUp(2)
	e.Remove(0)

	require.Len(t, emitted, 4)
	assert.Equal(t, []string{"a", "b", ""}, emitted[0])
	assert.Equal(t, []string{"a", "b", "c"}, emitted[1])
	assert.Equal(t, []string{"a", "c", "b"}, emitted[2])
	assert.Equal(t, []string{"c", "b"}, emitted[3])
}

func TestListEditor_BoundaryOpsAreNoOps(t *testing.T) {
	calls := 0
	e := NewListEditor([]string{"a", "b"}, func([]string) { calls++ })

	e.MoveUp(0)
	e.MoveDown(1)
	e.Remove(-1)
	e.Remove(2)
	e.UpdateItem(5, "x")

	assert.Zero(t, calls)
	assert.Equal(t, []string{"a", "b"}, e.Items())
}

func TestListEditor_ReturnedSlicesAreCopies(t *testing.T) {
	e := NewListEditor([]string{"a"}, nil)

	items := e.Items()
	items[0] = "mutated"

	assert.Equal(t, []string{"a"}, e.Items())
}

func TestListEditor_MoveUpThenDownRestoresOrder(t *testing.T) {
	original := []string{"a", "b", "c", "d"}
	e := NewListEditor(original, nil)

	for i := 1; i < len(original); i++ {
		e.MoveUp(i)
		e.MoveDown(i - 1)
		assert.Equal(t, original, e.Items(), "after moveUp(%d)+moveDown(%d)", i, i-1)
	}
}

func TestItemsEditor_AddInitializesDeclaredFields(t *testing.T) {
	var last []models.Document
	e := NewItemsEditor(FAQTestFields(), nil, func(items []models.Document) { last = items })

	e.Add()

	require.Len(t, last, 1)
	assert.Equal(t, models.Document{"question": "", "answer": ""}, last[0])
}

func TestItemsEditor_UpdateFieldEmitsDeepCopies(t *testing.T) {
	var last []models.Document
	e := NewItemsEditor(FAQTestFields(),
		[]models.Document{{"question": "q1", "answer": "a1"}},
		func(items []models.Document) { last = items })

	e.UpdateField(0, "answer", "updated")

	require.Len(t, last, 1)
	assert.Equal(t, "updated", last[0]["answer"])

	// Mutating the emitted copy must not leak back into the editor.
	last[0]["answer"] = "poisoned"
	assert.Equal(t, "updated", e.Items()[0]["answer"])
}

func TestItemsEditor_MoveAndRemove(t *testing.T) {
	e := NewItemsEditor(FAQTestFields(), []models.Document{
		{"question": "q1", "answer": ""},
		{"question": "q2", "answer": ""},
		{"question": "q3", "answer": ""},
	}, nil)

	e.MoveDown(0)
	assert.Equal(t, "q2", e.Items()[0]["question"])

	e.MoveUp(2)
	assert.Equal(t, "q3", e.Items()[1]["question"])

	e.Remove(1)
	items := e.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "q2", items[0]["question"])
	assert.Equal(t, "q1", items[1]["question"])
}

func TestItemsEditor_RemoveHookRunsAfterChange(t *testing.T) {
	var order []string
	e := NewItemsEditor(FAQTestFields(),
		[]models.Document{{"question": "q1", "answer": ""}},
		func([]models.Document) { order = append(order, "change") },
		WithRemoveHook(func() { order = append(order, "removed") }))

	e.Remove(0)

	assert.Equal(t, []string{"change", "removed"}, order)

	// The hook only fires for removals, not for other operations.
	e.Add()
	assert.Equal(t, []string{"change", "removed", "change"}, order)
}

// FAQTestFields, koleksiyon testleri için ortak alan tanımı.
func FAQTestFields() []Field {
	return []Field{
		{Key: "question", Label: "Question", Kind: KindText},
		{Key: "answer", Label: "Answer", Kind: KindTextarea},
	}
}
