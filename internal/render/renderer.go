// Package render projects tasks into list items of the page document.
package render

import (
	"strconv"

	"todo-list/internal/dom"
	"todo-list/internal/domain"
	"todo-list/internal/i18n"
)

// Control kinds attached to interactive elements through dom.ControlAttr
const (
	ControlToggle = "toggle"
	ControlDelete = "delete"
)

const (
	itemClass     = "task-item"
	checkboxClass = "todo-checkbox"
	deleteClass   = "delete-button"
	deleteGlyph   = "🗑"
)

// Labeler supplies accessible labels for task controls
type Labeler interface {
	ToggleLabel(content string) string
	DeleteLabel(content string) string
}

// Renderer appends and restyles task items in a Document
type Renderer struct {
	doc     *dom.Document
	labeler Labeler
	theme   Theme
}

// New creates a Renderer with DefaultTheme
func New(doc *dom.Document, labeler Labeler) *Renderer {
	return &Renderer{doc: doc, labeler: labeler, theme: DefaultTheme}
}

// SetLabeler swaps the label source, e.g. after a language change
func (r *Renderer) SetLabeler(labeler Labeler) {
	r.labeler = labeler
}

// RenderTask appends one list item for task to the end of the task list.
// It never looks for an existing item with the same id.
func (r *Renderer) RenderTask(task domain.Task) {
	list := r.doc.TaskList()
	if list == nil {
		return
	}

	id := strconv.FormatInt(task.ID, 10)
	inputID := "task-validate-" + id

	item := r.doc.CreateElement("li")
	item.SetAttr(dom.TaskIDAttr, id)
	item.AddClass(itemClass)

	input := r.doc.CreateElement("input")
	input.SetAttr("id", inputID)
	input.SetAttr("type", "checkbox")
	item.AppendChild(input)

	check := r.doc.CreateElement("span")
	check.AddClass(checkboxClass)
	check.SetAttr(dom.TaskIDAttr, id)
	check.SetAttr(dom.ControlAttr, ControlToggle)
	check.SetAttr("role", "checkbox")
	check.SetAttr("aria-label", r.labeler.ToggleLabel(task.Content))
	item.AppendChild(check)

	del := r.doc.CreateElement("button")
	del.AddClass(deleteClass)
	del.SetAttr("type", "button")
	del.SetAttr(dom.TaskIDAttr, id)
	del.SetAttr(dom.ControlAttr, ControlDelete)
	del.SetAttr("aria-label", r.labeler.DeleteLabel(task.Content))
	del.SetText(deleteGlyph)
	item.AppendChild(del)

	label := r.doc.CreateElement("label")
	label.SetAttr("for", inputID)
	label.SetText(task.Content)
	item.AppendChild(label)

	list.AppendChild(item)
	r.ApplyVariant(item, task.Completed)
}

// RenderAll clears the task list and renders tasks in order
func (r *Renderer) RenderAll(tasks []domain.Task) {
	list := r.doc.TaskList()
	if list == nil {
		return
	}
	list.ClearChildren()
	for _, task := range tasks {
		r.RenderTask(task)
	}
}

// ApplyVariant puts item into the variant matching completed, replacing any previous one.
func (r *Renderer) ApplyVariant(item *dom.Element, completed bool) {
	if item == nil {
		return
	}
	variant := VariantFor(completed)
	style := r.theme.For(variant)

	item.RemoveClass(string(Validated))
	item.RemoveClass(string(Unvalidated))
	item.AddClass(string(variant))
	item.SetStyle("box-shadow", style.ItemShadow)
	item.SetStyle("border", style.ItemBorder)

	if input := item.QueryTag("input"); input != nil {
		if completed {
			input.SetAttr("checked", "")
		} else {
			input.RemoveAttr("checked")
		}
	}

	if check := item.QueryClass(checkboxClass); check != nil {
		check.SetText(style.CheckMark)
		check.SetAttr("aria-checked", strconv.FormatBool(completed))
		check.SetStyle("background-color", style.CheckBackground)
		check.SetStyle("box-shadow", style.CheckShadow)
		check.SetStyle("border", style.CheckBorder)
		check.SetStyle("text-shadow", style.CheckTextShadow)
	}
}

// VariantOf reads the variant of a rendered item; "" when it carries neither.
func VariantOf(item *dom.Element) Variant {
	switch {
	case item == nil:
		return ""
	case item.HasClass(string(Validated)):
		return Validated
	case item.HasClass(string(Unvalidated)):
		return Unvalidated
	}
	return ""
}

// ContentOf returns the label text of a rendered item
func ContentOf(item *dom.Element) string {
	if item == nil {
		return ""
	}
	if label := item.QueryTag("label"); label != nil {
		return label.TextContent()
	}
	return ""
}

// RenderLanguage updates the language selector for code
func (r *Renderer) RenderLanguage(code string) {
	if text := r.doc.GetElementByID(dom.LanguageTextID); text != nil {
		text.SetText(i18n.LanguageName(code))
	}
	if flag := r.doc.GetElementByID(dom.LanguageFlagID); flag != nil {
		flag.SetClassName("fi " + i18n.LanguageFlag(code))
	}
	if sel := r.doc.GetElementByID(dom.LanguageSelectID); sel != nil {
		sel.ClearChildren()
		for _, lang := range i18n.Languages {
			opt := r.doc.CreateElement("option")
			opt.SetAttr("value", lang.Code)
			if lang.Code == i18n.Match(code) {
				opt.SetAttr("selected", "")
			}
			opt.SetText(lang.Name)
			sel.AppendChild(opt)
		}
	}
}
