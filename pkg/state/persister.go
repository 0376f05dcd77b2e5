package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Persister loads and saves EditorState under a single key of a Store.
type Persister struct {
	store  Store
	key    string
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Persister.
type Option func(*Persister)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(p *Persister) { p.key = key }
}

// WithClock injects the time source used for lastSaved stamps.
func WithClock(now func() time.Time) Option {
	return func(p *Persister) { p.now = now }
}

// WithLogger sets the logger anomalies are reported to. Without it the
// Persister is silent.
func WithLogger(logger *log.Logger) Option {
	return func(p *Persister) { p.logger = logger }
}

// NewPersister creates a Persister over store.
func NewPersister(store Store, opts ...Option) *Persister {
	p := &Persister{
		store:  store,
		key:    Key,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the storage key.
func (p *Persister) Key() string {
	return p.key
}

// Load returns the stored state. A missing value, a value that is not valid
// JSON, or one with an unknown theme or view mode yields Default; only the
// log records why.
func (p *Persister) Load(ctx context.Context) EditorState {
	st, err := p.load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.logger.Warn("discarding stored editor state", "key", p.key, "error", err)
		}
		return Default(p.now())
	}
	return st
}

// Inspect is Load that reports why the stored state was rejected instead of
// hiding it. The CLI uses it for diagnostics.
func (p *Persister) Inspect(ctx context.Context) (EditorState, error) {
	return p.load(ctx)
}

func (p *Persister) load(ctx context.Context) (EditorState, error) {
	data, err := p.store.Get(ctx, p.key)
	if err != nil {
		return EditorState{}, err
	}

	var st EditorState
	if err := json.Unmarshal(data, &st); err != nil {
		return EditorState{}, fmt.Errorf("decode: %w", err)
	}
	if err := st.Validate(); err != nil {
		return EditorState{}, fmt.Errorf("validate: %w", err)
	}

	return st, nil
}

// Save stamps st.LastSaved and overwrites the stored value with the full
// state.
func (p *Persister) Save(ctx context.Context, st *EditorState) error {
	st.LastSaved = p.now().UTC()

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("state: encode: %w", err)
	}
	if err := p.store.Set(ctx, p.key, data); err != nil {
		return err
	}

	p.logger.Debug("saved editor state",
		"key", p.key,
		"bytes", len(data),
	)
	return nil
}

// Reset removes the stored state so the next Load returns Default.
func (p *Persister) Reset(ctx context.Context) error {
	return p.store.Delete(ctx, p.key)
}
