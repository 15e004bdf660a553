package cli

import (
	"context"
	"fmt"

	"todo-list/internal/i18n"
)

// LangCommand shows or changes the interface language
type LangCommand struct {
	app *App
}

// NewLangCommand creates a new lang command handler
func NewLangCommand(app *App) *LangCommand {
	return &LangCommand{app: app}
}

// Execute lists the supported languages, or switches to args[0]
func (c *LangCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		current := c.app.api.Language()
		for _, lang := range i18n.Languages {
			marker := " "
			if lang.Code == current {
				marker = "*"
			}
			fmt.Fprintf(c.app.out, "%s %s  %s\n", marker, lang.Code, lang.Name)
		}
		return nil
	}

	if err := c.app.api.ChangeLanguage(ctx, args[0]); err != nil {
		return err
	}
	lang := c.app.api.Language()
	fmt.Fprintf(c.app.out, "Language set to %s (%s)\n", i18n.LanguageName(lang), lang)
	return nil
}
