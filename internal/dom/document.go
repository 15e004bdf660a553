// Package dom holds the task page as an HTML node tree and the element operations the
// renderer and event router perform on it.
package dom

import (
	"bytes"
	_ "embed"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

//go:embed page.html
var pageTemplate string

// Well-known element ids and attributes of the page
const (
	TaskListID       = "taskList"
	TaskInputID      = "taskInput"
	LanguageTextID   = "languageText"
	LanguageFlagID   = "currentLanguageFlag"
	LanguageSelectID = "languageSelect"
	TaskIDAttr       = "data-task-id"
	ControlAttr      = "data-control"
)

const (
	i18nAttr        = "data-i18n"
	i18nPlaceholder = "data-i18n-placeholder"
	i18nAria        = "data-i18n-aria"
)

// Translator supplies display strings for data-i18n attributes
type Translator interface {
	T(key string, vars map[string]string) string
}

// Document is a parsed HTML page
type Document struct {
	root *html.Node
}

// NewDocument parses the embedded task page
func NewDocument() (*Document, error) {
	return Parse(strings.NewReader(pageTemplate))
}

// Parse builds a Document from arbitrary HTML
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// GetElementByID returns the first element with the given id, or nil
func (d *Document) GetElementByID(id string) *Element {
	return wrap(findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	}))
}

// TaskList returns the task container, or nil when absent
func (d *Document) TaskList() *Element {
	return d.GetElementByID(TaskListID)
}

// TaskItem returns the list item for task id, or nil
func (d *Document) TaskItem(id int64) *Element {
	list := d.TaskList()
	if list == nil {
		return nil
	}
	want := strconv.FormatInt(id, 10)
	return wrap(findFirst(list.node, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Li && attr(n, TaskIDAttr) == want
	}))
}

// TaskItems returns every task list item in document order
func (d *Document) TaskItems() []*Element {
	list := d.TaskList()
	if list == nil {
		return nil
	}
	var items []*Element
	for c := list.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Li {
			items = append(items, wrap(c))
		}
	}
	return items
}

// FindControl returns the element of the given control kind belonging to task id
func (d *Document) FindControl(id int64, control string) *Element {
	item := d.TaskItem(id)
	if item == nil {
		return nil
	}
	return item.QueryAttr(ControlAttr, control)
}

// InputValue returns the current value of the input element with the given id
func (d *Document) InputValue(id string) string {
	el := d.GetElementByID(id)
	if el == nil {
		return ""
	}
	return el.Attr("value")
}

// SetInputValue replaces the value of the input element with the given id
func (d *Document) SetInputValue(id, value string) {
	if el := d.GetElementByID(id); el != nil {
		el.SetAttr("value", value)
	}
}

// ApplyTranslations rewrites text, placeholders and aria labels of annotated elements.
func (d *Document) ApplyTranslations(tr Translator, lang string) {
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		el := wrap(n)
		if key := el.Attr(i18nAttr); key != "" {
			el.SetText(tr.T(key, nil))
		}
		if key := el.Attr(i18nPlaceholder); key != "" {
			el.SetAttr("placeholder", tr.T(key, nil))
		}
		if key := el.Attr(i18nAria); key != "" {
			el.SetAttr("aria-label", tr.T(key, nil))
		}
		if n.DataAtom == atom.Html {
			el.SetAttr("lang", lang)
		}
	})
}

// CreateElement returns a detached element
func (d *Document) CreateElement(tag string) *Element {
	return wrap(&html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))})
}

// Render writes the document as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
