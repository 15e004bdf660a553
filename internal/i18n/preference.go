package i18n

import (
	"context"

	"todo-list/internal/errors"
	"todo-list/internal/storage"
)

// PreferenceStore persists the selected language under storage.LanguageKey.
type PreferenceStore struct {
	store       storage.KeyValueStore
	defaultLang string
}

// NewPreferenceStore creates a preference store; defaultLang is returned when nothing is saved.
func NewPreferenceStore(store storage.KeyValueStore, defaultLang string) *PreferenceStore {
	return &PreferenceStore{store: store, defaultLang: Match(defaultLang)}
}

// Get returns the saved language, or the default when absent
func (p *PreferenceStore) Get(ctx context.Context) (string, error) {
	value, ok, err := p.store.GetItem(ctx, storage.LanguageKey)
	if err != nil {
		return "", err
	}
	if !ok || value == "" {
		return p.defaultLang, nil
	}
	return Match(value), nil
}

// Set saves code as the preferred language. Only supported codes are accepted.
func (p *PreferenceStore) Set(ctx context.Context, code string) error {
	if !IsSupported(code) {
		return errors.NewInvalidInputError("language", code, "must be one of fr, en, de, es")
	}
	return p.store.SetItem(ctx, storage.LanguageKey, code)
}
