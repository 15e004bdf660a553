// Package i18n provides the display strings of the task list in French, English, German and Spanish.
package i18n

import (
	"strings"

	"todo-list/internal/logging"
)

// Translator resolves message keys for one language, falling back to French.
type Translator struct {
	code     string
	messages Catalog
	fallback Catalog
}

// NewTranslator creates a translator for code. Unsupported codes resolve to DefaultLanguage.
func NewTranslator(code string) *Translator {
	code = Match(code)

	fallback, err := LoadCatalog(DefaultLanguage)
	if err != nil {
		logging.Debugf("fallback catalog unavailable: %v", err)
		fallback = Catalog{}
	}

	messages := fallback
	if code != DefaultLanguage {
		if loaded, err := LoadCatalog(code); err == nil {
			messages = loaded
		} else {
			logging.Debugf("catalog for %s unavailable, using %s: %v", code, DefaultLanguage, err)
		}
	}

	return &Translator{code: code, messages: messages, fallback: fallback}
}

// Language returns the resolved language code
func (t *Translator) Language() string {
	return t.code
}

// T returns the message for key with {{name}} placeholders replaced from vars.
// Unknown keys return the key itself.
func (t *Translator) T(key string, vars map[string]string) string {
	msg, ok := t.messages[key]
	if !ok {
		msg, ok = t.fallback[key]
	}
	if !ok {
		return key
	}

	for name, value := range vars {
		msg = strings.ReplaceAll(msg, "{{"+name+"}}", value)
	}
	return msg
}

// ToggleLabel returns the accessible label of a task's toggle control
func (t *Translator) ToggleLabel(content string) string {
	return t.T("task.toggle_label", map[string]string{"content": content})
}

// DeleteLabel returns the accessible label of a task's delete control
func (t *Translator) DeleteLabel(content string) string {
	return t.T("task.delete_label", map[string]string{"content": content})
}
