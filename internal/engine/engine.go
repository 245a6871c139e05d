// Package engine keeps a typed table model and its backing markup tree
// mutually consistent across create, update and delete operations,
// including operations gated by an external decision function.
package engine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/tabledom/internal/dom"
	"github.com/leengari/tabledom/internal/model"
	"github.com/leengari/tabledom/internal/parse"
	"github.com/leengari/tabledom/internal/render"
)

// Engine is the main entry point. One instance owns exactly one table:
// the model is the source of truth between calls, the tree is the
// source of truth on Refresh. Access is single-writer; callers needing
// ordering across concurrent use must serialize calls themselves.
type Engine struct {
	doc           dom.Document
	tableNode     dom.Node
	table         *model.Table
	headerPresent bool
	renderer      *render.Renderer
	nextRowID     int
	observers     []Observer
	logger        *slog.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New resolves the locator against the document and parses the table
// once. It fails with NotFoundError or WrongKindError when the locator
// does not resolve to a table, and propagates parse failures.
func New(doc dom.Document, locator string, opts ...Option) (*Engine, error) {
	node := doc.FindByID(locator)
	if node == nil {
		return nil, &NotFoundError{Locator: locator}
	}
	if node.Tag() != "table" {
		return nil, &WrongKindError{Locator: locator, Tag: node.Tag()}
	}

	e := &Engine{
		doc:       doc,
		tableNode: node,
		logger:    slog.Default(),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.reparse(); err != nil {
		return nil, err
	}
	return e, nil
}

// Table returns a deep snapshot of the current model. Mutating the
// snapshot does not affect the engine.
func (e *Engine) Table() *model.Table {
	return e.table.Copy()
}

// Refresh discards the model and re-parses it from the tree. The row
// id counter is re-derived but never lowered, so identities handed out
// before the refresh are not reissued after it.
func (e *Engine) Refresh() error {
	return e.reparse()
}

func (e *Engine) reparse() error {
	opID := uuid.New().String()
	e.notify(Event{Type: EventParseStart, OpID: opID})

	res, err := parse.Parse(e.tableNode)
	if err != nil {
		return err
	}

	e.table = res.Table
	e.headerPresent = res.HeaderPresent
	e.renderer = render.New(e.tableNode, res.HeaderPresent)
	if res.NextRowID > e.nextRowID {
		e.nextRowID = res.NextRowID
	}

	e.notify(Event{Type: EventParseEnd, OpID: opID, Data: map[string]interface{}{
		"columns": len(e.table.Headers),
		"rows":    len(e.table.Rows),
	}})
	return nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
