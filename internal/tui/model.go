// Package tui is an interactive terminal front-end for a page session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todo-list/internal/api"
	"todo-list/internal/errors"
	"todo-list/internal/i18n"
	"todo-list/internal/render"
)

// Model is the bubbletea model of the task list
type Model struct {
	ctx        context.Context
	page       api.API
	items      []api.Item
	cursor     int
	input      textinput.Model
	focusInput bool
	err        error
}

// New creates a model over page
func New(ctx context.Context, page api.API) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 500
	input.Placeholder = page.Translator().T("form.placeholder", nil)

	return Model{
		ctx:   ctx,
		page:  page,
		items: page.Items(),
		input: input,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.focusInput {
		return m.updateInput(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		created, err := m.page.Submit(m.ctx, m.input.Value())
		m.err = err
		if err == nil && created != nil {
			m.input.SetValue("")
			m.refresh()
			m.cursor = len(m.items) - 1
		}
		return m, nil
	case "tab", "esc":
		m.focusInput = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ", "enter":
		if item, ok := m.selected(); ok {
			m.err = m.page.Toggle(m.ctx, item.ID)
			m.refresh()
		}
	case "d":
		if item, ok := m.selected(); ok {
			m.err = m.page.Delete(m.ctx, item.ID)
			m.refresh()
		}
	case "tab":
		m.focusInput = true
		cmd := m.input.Focus()
		return m, cmd
	case "l":
		m.err = m.page.ChangeLanguage(m.ctx, i18n.NextLanguage(m.page.Language()))
		m.input.Placeholder = m.page.Translator().T("form.placeholder", nil)
		m.refresh()
	}
	return m, nil
}

func (m Model) selected() (api.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return api.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) refresh() {
	m.items = m.page.Items()
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	tr := m.page.Translator()
	var b strings.Builder

	b.WriteString(styleTitle.Render(fmt.Sprintf("%s  [%s]", tr.T("app.title", nil), i18n.LanguageName(m.page.Language()))))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(styleHelp.UnsetMarginTop().Render(tr.T("list.empty", nil)))
		b.WriteString("\n")
	}
	for i, item := range m.items {
		marker := "  "
		if i == m.cursor && !m.focusInput {
			marker = styleCursor.Render("> ")
		}
		mark := " "
		if item.Variant == render.Validated {
			mark = "✓"
		}
		line := fmt.Sprintf("[%s] %s", mark, item.Content)
		b.WriteString(marker + variantStyle(item.Variant).Render(line) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(styleError.Render(errors.GetUserMessage(m.err)))
		b.WriteString("\n")
	}
	b.WriteString(styleHelp.Render(tr.T("tui.help", nil)))
	return b.String()
}
