package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element wraps one element node of a Document
type Element struct {
	node *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{node: n}
}

// Tag returns the element name
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the attribute value, or "" when unset
func (e *Element) Attr(key string) string {
	return attr(e.node, key)
}

// HasAttr reports whether the attribute is present
func (e *Element) HasAttr(key string) bool {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces an attribute
func (e *Element) SetAttr(key, value string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr deletes an attribute if present
func (e *Element) RemoveAttr(key string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	e.node.Attr = attrs
}

// Classes returns the class list
func (e *Element) Classes() []string {
	return strings.Fields(e.Attr("class"))
}

// HasClass reports class membership
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class unless already present
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	e.SetAttr("class", strings.TrimSpace(e.Attr("class")+" "+class))
}

// RemoveClass removes class if present
func (e *Element) RemoveClass(class string) {
	var kept []string
	for _, c := range e.Classes() {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// SetClassName replaces the whole class attribute
func (e *Element) SetClassName(value string) {
	e.SetAttr("class", value)
}

// Style returns one inline style property
func (e *Element) Style(property string) string {
	for _, decl := range parseStyle(e.Attr("style")) {
		if decl[0] == property {
			return decl[1]
		}
	}
	return ""
}

// SetStyle sets one inline style property, keeping declaration order
func (e *Element) SetStyle(property, value string) {
	decls := parseStyle(e.Attr("style"))
	replaced := false
	for i := range decls {
		if decls[i][0] == property {
			decls[i][1] = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, [2]string{property, value})
	}

	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d[0] + ": " + d[1]
	}
	e.SetAttr("style", strings.Join(parts, "; "))
}

func parseStyle(style string) [][2]string {
	var decls [][2]string
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, [2]string{strings.TrimSpace(name), strings.TrimSpace(value)})
	}
	return decls
}

// TextContent returns the concatenated text of all descendants
func (e *Element) TextContent() string {
	var sb strings.Builder
	walk(e.node, func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
	})
	return sb.String()
}

// SetText replaces all children with a single text node
func (e *Element) SetText(text string) {
	e.ClearChildren()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// ClearChildren detaches every child
func (e *Element) ClearChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

// AppendChild attaches child as the last child
func (e *Element) AppendChild(child *Element) {
	if child.node.Parent != nil {
		child.node.Parent.RemoveChild(child.node)
	}
	e.node.AppendChild(child.node)
}

// Remove detaches the element from its parent. Detached elements are left as is.
func (e *Element) Remove() {
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
}

// Attached reports whether the element still has a parent
func (e *Element) Attached() bool {
	return e.node.Parent != nil
}

// Parent returns the parent element, or nil
func (e *Element) Parent() *Element {
	if e.node.Parent == nil || e.node.Parent.Type != html.ElementNode {
		return nil
	}
	return wrap(e.node.Parent)
}

// Closest returns the nearest ancestor-or-self carrying attribute key
func (e *Element) Closest(key string) *Element {
	for n := e.node; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && wrap(n).HasAttr(key) {
			return wrap(n)
		}
	}
	return nil
}

// QueryClass returns the first descendant carrying class
func (e *Element) QueryClass(class string) *Element {
	return e.query(func(el *Element) bool { return el.HasClass(class) })
}

// QueryAttr returns the first descendant whose attribute key equals value
func (e *Element) QueryAttr(key, value string) *Element {
	return e.query(func(el *Element) bool { return el.HasAttr(key) && el.Attr(key) == value })
}

// QueryTag returns the first descendant with the given tag
func (e *Element) QueryTag(tag string) *Element {
	return e.query(func(el *Element) bool { return el.Tag() == tag })
}

func (e *Element) query(match func(*Element) bool) *Element {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		found := findFirst(c, func(n *html.Node) bool {
			return n.Type == html.ElementNode && match(wrap(n))
		})
		if found != nil {
			return wrap(found)
		}
	}
	return nil
}
