// Package session ties the persisted editor state to the live document and
// decides when to write it back.
//
// A session is dirty when the document text or any state field changed since
// the last successful save. Flush writes only when dirty; Save always writes.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdpad/pkg/document"
	"github.com/yaklabco/mdpad/pkg/state"
)

// DefaultAutosaveInterval is how often a dirty session is written back.
const DefaultAutosaveInterval = 30 * time.Second

// Session owns the active EditorState and Document.
type Session struct {
	mu sync.Mutex

	st        state.EditorState
	doc       *document.Document
	persister *state.Persister
	logger    *log.Logger

	savedVersion uint64
	stateDirty   bool
}

// Open loads the stored state and builds the document from its content.
func Open(ctx context.Context, persister *state.Persister, logger *log.Logger, opts ...document.Option) *Session {
	st := persister.Load(ctx)
	doc := document.New(st.Content, opts...)

	return &Session{
		st:           st,
		doc:          doc,
		persister:    persister,
		logger:       logger,
		savedVersion: doc.Version(),
	}
}

// Document returns the live document. Edits made through it mark the
// session dirty.
func (s *Session) Document() *document.Document {
	return s.doc
}

// State returns a copy of the current state with Content taken from the
// document.
func (s *Session) State() state.EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.st
	st.Content = s.doc.Text()
	return st
}

// Update applies fn to the state and marks the session dirty. Content
// changes made by fn are applied to the document.
func (s *Session) Update(fn func(*state.EditorState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.st
	st.Content = s.doc.Text()
	fn(&st)

	s.doc.SetText(st.Content)
	s.st = st
	s.stateDirty = true
}

// SetContent replaces the document text.
func (s *Session) SetContent(text string) {
	s.doc.SetText(text)
}

// Dirty reports whether there are unsaved changes.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirtyLocked()
}

func (s *Session) dirtyLocked() bool {
	return s.stateDirty || s.doc.Version() != s.savedVersion
}

// LastSaved returns the timestamp of the last successful save, or of the
// loaded state when nothing was saved yet.
func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.LastSaved
}

// Flush saves when the session is dirty. Returns true if a save happened.
func (s *Session) Flush(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirtyLocked() {
		return false, nil
	}
	if err := s.saveLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the full state regardless of the dirty flag.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Session) saveLocked(ctx context.Context) error {
	version := s.doc.Version()

	st := s.st
	st.Content = s.doc.Text()
	if err := s.persister.Save(ctx, &st); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.st = st
	s.savedVersion = version
	s.stateDirty = false

	if s.logger != nil {
		s.logger.Debug("session saved", "version", version, "chars", len(st.Content))
	}
	return nil
}

// Reset discards stored state and restarts from the default.
func (s *Session) Reset(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Reset(ctx); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}

	s.st = state.Default(now)
	s.doc.SetText(s.st.Content)
	s.savedVersion = s.doc.Version()
	s.stateDirty = false
	return nil
}
