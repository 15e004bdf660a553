// Package api exposes one page session: the document, its task list and the user
// gestures that act on it. Every operation holds the session lock until the
// repository and the document agree again.
package api

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"todo-list/internal/config"
	"todo-list/internal/dom"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/events"
	"todo-list/internal/i18n"
	"todo-list/internal/render"
	"todo-list/internal/repository"
	"todo-list/internal/storage"
)

// API defines the operations available on a page session.
type API interface {
	// User gestures
	Submit(ctx context.Context, content string) (*domain.Task, error)
	Toggle(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	Click(ctx context.Context, id int64, control string) error
	ChangeLanguage(ctx context.Context, code string) error
	Reload(ctx context.Context) error
	Reset(ctx context.Context) error

	// Views
	Tasks(ctx context.Context) ([]domain.Task, error)
	Entries(ctx context.Context) ([]storage.Entry, error)
	Items() []Item
	Language() string
	Translator() *i18n.Translator
	HTML() string
}

// Item is one rendered list row as read back from the document.
type Item struct {
	ID      int64          `json:"id"`
	Content string         `json:"content"`
	Variant render.Variant `json:"variant"`
}

// Options configures a page session
type Options struct {
	// Language is used when no preference has been saved yet.
	Language string
	Config   *config.Config
}

type apiImpl struct {
	mu         sync.Mutex
	store      storage.KeyValueStore
	repo       repository.TaskRepository
	prefs      *i18n.PreferenceStore
	doc        *dom.Document
	renderer   *render.Renderer
	router     *events.Router
	ids        *events.IDAllocator
	translator *i18n.Translator
}

// New performs a page load over store: it resolves the language, translates the
// page, lists the persisted tasks, initialises the id counter and renders every task.
func New(ctx context.Context, store storage.KeyValueStore, opts Options) (API, error) {
	defaultLang := opts.Language
	if defaultLang == "" && opts.Config != nil {
		defaultLang = opts.Config.Display.Language
	}

	prefs := i18n.NewPreferenceStore(store, defaultLang)
	lang, err := prefs.Get(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := dom.NewDocument()
	if err != nil {
		return nil, err
	}
	translator := i18n.NewTranslator(lang)
	doc.ApplyTranslations(translator, translator.Language())

	renderer := render.New(doc, translator)
	renderer.RenderLanguage(translator.Language())

	var repo repository.TaskRepository
	if opts.Config != nil {
		repo = repository.NewWithConfig(store, opts.Config)
	} else {
		repo = repository.New(store)
	}

	tasks, err := repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := events.NewIDAllocator(tasks)
	for _, task := range tasks {
		renderer.RenderTask(task)
	}

	return &apiImpl{
		store:      store,
		repo:       repo,
		prefs:      prefs,
		doc:        doc,
		renderer:   renderer,
		router:     events.NewRouter(repo, doc, renderer, ids),
		ids:        ids,
		translator: translator,
	}, nil
}

// Submit types content into the task input and submits the form. It returns the
// created task, or nil when the input was blank.
func (a *apiImpl) Submit(ctx context.Context, content string) (*domain.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.ids.Peek()
	a.doc.SetInputValue(dom.TaskInputID, content)
	if err := a.router.Dispatch(ctx, events.Submit{}); err != nil {
		return nil, err
	}
	if a.doc.TaskItem(id) == nil {
		return nil, nil
	}

	task := domain.NewTask(id, strings.TrimSpace(content))
	return &task, nil
}

// Toggle clicks the toggle control of task id
func (a *apiImpl) Toggle(ctx context.Context, id int64) error {
	return a.Click(ctx, id, render.ControlToggle)
}

// Delete clicks the delete control of task id
func (a *apiImpl) Delete(ctx context.Context, id int64) error {
	return a.Click(ctx, id, render.ControlDelete)
}

// Click dispatches a click on the control of the given kind belonging to task id.
// A missing element produces a click on nothing, which the router ignores.
func (a *apiImpl) Click(ctx context.Context, id int64, control string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	target := a.doc.FindControl(id, control)
	return a.router.Dispatch(ctx, events.Click{Target: target})
}

// ChangeLanguage saves the preference, retranslates the page and re-renders the list.
func (a *apiImpl) ChangeLanguage(ctx context.Context, code string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.prefs.Set(ctx, code); err != nil {
		return err
	}

	a.applyLanguage(code)
	return a.rerender(ctx)
}

func (a *apiImpl) applyLanguage(code string) {
	a.translator = i18n.NewTranslator(code)
	a.doc.ApplyTranslations(a.translator, a.translator.Language())
	a.renderer.SetLabeler(a.translator)
	a.renderer.RenderLanguage(a.translator.Language())
}

// Reset wipes the backing store, then reloads the page as a fresh visit would see it:
// no tasks and the default language. Ids keep counting up from where the session was.
func (a *apiImpl) Reset(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	inspector, err := a.inspector()
	if err != nil {
		return err
	}
	if err := inspector.Reset(ctx); err != nil {
		return err
	}

	lang, err := a.prefs.Get(ctx)
	if err != nil {
		return err
	}
	a.applyLanguage(lang)
	return a.rerender(ctx)
}

// Entries lists the raw key/value pairs held by the backing store
func (a *apiImpl) Entries(ctx context.Context) ([]storage.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	inspector, err := a.inspector()
	if err != nil {
		return nil, err
	}
	return inspector.Entries(ctx)
}

func (a *apiImpl) inspector() (storage.Inspector, error) {
	inspector, ok := a.store.(storage.Inspector)
	if !ok {
		return nil, errors.NewInvalidInputError("storage.backend", fmt.Sprintf("%T", a.store), "backend cannot list or reset its contents")
	}
	return inspector, nil
}

// Reload rebuilds the list from storage, picking up writes made by other sessions.
func (a *apiImpl) Reload(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rerender(ctx)
}

func (a *apiImpl) rerender(ctx context.Context) error {
	tasks, err := a.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	a.ids.AdvancePast(tasks)
	a.renderer.RenderAll(tasks)
	return nil
}

// Tasks returns the persisted collection
func (a *apiImpl) Tasks(ctx context.Context) ([]domain.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.repo.ListAll(ctx)
}

// Items returns the rows currently rendered in the document
func (a *apiImpl) Items() []Item {
	a.mu.Lock()
	defer a.mu.Unlock()

	elements := a.doc.TaskItems()
	items := make([]Item, 0, len(elements))
	for _, el := range elements {
		id, err := parseID(el.Attr(dom.TaskIDAttr))
		if err != nil {
			continue
		}
		items = append(items, Item{
			ID:      id,
			Content: render.ContentOf(el),
			Variant: render.VariantOf(el),
		})
	}
	return items
}

// Language returns the code of the language the page is displayed in
func (a *apiImpl) Language() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.translator.Language()
}

// Translator returns the message catalog for the current language
func (a *apiImpl) Translator() *i18n.Translator {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.translator
}

// HTML renders the current document
func (a *apiImpl) HTML() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.doc.String()
}
