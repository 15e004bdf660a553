package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/i18n"
	"todo-list/internal/tui"
)

const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

const markdownWidth = 80

var (
	listHeaderStyle      = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	listCellStyle        = lipgloss.NewStyle().PaddingRight(2)
	listValidatedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF0D"))
	listUnvalidatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// ListCommand handles the list command
type ListCommand struct {
	app    *App
	mapper *domain.TaskMapper
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, mapper: domain.NewTaskMapper()}
}

// Execute prints the persisted tasks. args[0], when given, selects the output format.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	format := c.app.config.Display.ListDefaultFormat
	if len(args) > 0 && args[0] != "" {
		format = args[0]
	}

	tasks, err := c.app.api.Tasks(ctx)
	if err != nil {
		return err
	}
	tr := c.app.api.Translator()

	switch format {
	case FormatTable:
		return c.printTable(tasks, tr)
	case FormatJSON:
		return c.printJSON(tasks)
	case FormatCSV:
		return c.printCSV(tasks)
	case FormatMarkdown:
		return c.printMarkdown(tasks, tr)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

func (c *ListCommand) printTable(tasks []domain.Task, tr *i18n.Translator) error {
	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, tr.T("list.empty", nil))
		return nil
	}

	tui.ApplyColorProfile(c.app.config.Display.NoColor)

	headers := []string{tr.T("list.id", nil), tr.T("list.content", nil), tr.T("list.status", nil)}
	rows := make([][]string, len(tasks))
	for i, task := range tasks {
		rows[i] = []string{strconv.FormatInt(task.ID, 10), task.Content, statusLabel(tr, task.Completed)}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(listHeaderStyle.Width(widths[i] + 2).Render(h))
	}
	b.WriteString("\n")
	for r, row := range rows {
		status := listUnvalidatedStyle
		if tasks[r].Completed {
			status = listValidatedStyle
		}
		for i, cell := range row {
			style := listCellStyle.Width(widths[i] + 2)
			if i == len(row)-1 {
				style = style.Inherit(status)
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}

	fmt.Fprint(c.app.out, b.String())
	return nil
}

func (c *ListCommand) printJSON(tasks []domain.Task) error {
	data, err := json.MarshalIndent(c.mapper.ToRecordSlice(tasks), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	fmt.Fprintln(c.app.out, string(data))
	return nil
}

func (c *ListCommand) printCSV(tasks []domain.Task) error {
	writer := csv.NewWriter(c.app.out)

	if err := writer.Write([]string{"id", "content", "completed"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, task := range tasks {
		record := []string{
			strconv.FormatInt(task.ID, 10),
			task.Content,
			strconv.FormatBool(task.Completed),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (c *ListCommand) printMarkdown(tasks []domain.Task, tr *i18n.Translator) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", tr.T("app.title", nil))
	if len(tasks) == 0 {
		b.WriteString(tr.T("list.empty", nil))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", tr.T("list.id", nil), tr.T("list.content", nil), tr.T("list.status", nil))
		b.WriteString("|---:|---|---|\n")
		for _, task := range tasks {
			content := strings.ReplaceAll(task.Content, "|", `\|`)
			fmt.Fprintf(&b, "| %d | %s | %s |\n", task.ID, content, statusLabel(tr, task.Completed))
		}
	}

	renderer, err := glamour.NewTermRenderer(
		c.markdownStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return errors.NewInvalidInputError("markdown_style", c.app.config.Display.MarkdownStyle, err.Error())
	}
	out, err := renderer.Render(b.String())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Fprint(c.app.out, out)
	return nil
}

func (c *ListCommand) markdownStyle() glamour.TermRendererOption {
	display := c.app.config.Display
	switch {
	case display.NoColor:
		return glamour.WithStandardStyle(styles.NoTTYStyle)
	case display.MarkdownStyle == "" || display.MarkdownStyle == styles.AutoStyle:
		return glamour.WithAutoStyle()
	default:
		return glamour.WithStandardStyle(display.MarkdownStyle)
	}
}

func statusLabel(tr *i18n.Translator, completed bool) string {
	if completed {
		return tr.T("list.done", nil)
	}
	return tr.T("list.todo", nil)
}
