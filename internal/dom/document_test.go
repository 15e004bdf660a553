package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslator map[string]string

func (f fakeTranslator) T(key string, _ map[string]string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return key
}

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := NewDocument()
	require.NoError(t, err)
	return doc
}

func TestNewDocument_WellKnownElements(t *testing.T) {
	doc := newTestDocument(t)

	for _, id := range []string{TaskListID, TaskInputID, LanguageTextID, LanguageFlagID, LanguageSelectID} {
		assert.NotNil(t, doc.GetElementByID(id), id)
	}
	assert.Nil(t, doc.GetElementByID("nope"))
	assert.Empty(t, doc.TaskItems())
}

func TestInputValue(t *testing.T) {
	doc := newTestDocument(t)

	assert.Equal(t, "", doc.InputValue(TaskInputID))
	doc.SetInputValue(TaskInputID, "Buy milk")
	assert.Equal(t, "Buy milk", doc.InputValue(TaskInputID))

	doc.SetInputValue("missing", "x")
	assert.Equal(t, "", doc.InputValue("missing"))
}

func TestTaskItemLookup(t *testing.T) {
	doc := newTestDocument(t)
	list := doc.TaskList()

	for _, id := range []string{"1", "2"} {
		li := doc.CreateElement("li")
		li.SetAttr(TaskIDAttr, id)
		btn := doc.CreateElement("button")
		btn.SetAttr(ControlAttr, "delete")
		li.AppendChild(btn)
		list.AppendChild(li)
	}

	require.Len(t, doc.TaskItems(), 2)
	require.NotNil(t, doc.TaskItem(2))
	assert.Equal(t, "2", doc.TaskItem(2).Attr(TaskIDAttr))
	assert.Nil(t, doc.TaskItem(3))

	control := doc.FindControl(1, "delete")
	require.NotNil(t, control)
	assert.Equal(t, "1", control.Closest(TaskIDAttr).Attr(TaskIDAttr))
	assert.Nil(t, doc.FindControl(1, "toggle"))

	doc.TaskItem(1).Remove()
	assert.Nil(t, doc.TaskItem(1))
	assert.Nil(t, doc.FindControl(1, "delete"))
	assert.False(t, control.Closest(TaskIDAttr).Attached())

	list.ClearChildren()
	assert.Empty(t, doc.TaskItems())
}

func TestApplyTranslations(t *testing.T) {
	doc := newTestDocument(t)
	tr := fakeTranslator{
		"app.title":        "My list",
		"form.placeholder": "Type here",
		"form.aria":        "New task",
		"form.submit":      "Add",
	}

	doc.ApplyTranslations(tr, "en")
	out := doc.String()

	assert.Contains(t, out, `<html lang="en">`)
	assert.Contains(t, out, "<title data-i18n=\"app.title\">My list</title>")
	assert.Contains(t, out, `placeholder="Type here"`)
	assert.Contains(t, out, `aria-label="New task"`)
	assert.Contains(t, out, ">Add</button>")
}

func TestMissingTaskList(t *testing.T) {
	doc, err := Parse(strings.NewReader("<html><body><p>bare</p></body></html>"))
	require.NoError(t, err)

	assert.Nil(t, doc.TaskList())
	assert.Nil(t, doc.TaskItem(1))
	assert.Nil(t, doc.TaskItems())
	assert.Nil(t, doc.FindControl(1, "toggle"))
}
