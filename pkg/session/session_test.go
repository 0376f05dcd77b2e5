package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpad/pkg/session"
	"github.com/yaklabco/mdpad/pkg/state"
	"github.com/yaklabco/mdpad/pkg/theme"
)

// countingStore records how many times Set is called.
type countingStore struct {
	*state.MemoryStore
	sets   int
	failOn error
}

func (c *countingStore) Set(ctx context.Context, key string, value []byte) error {
	if c.failOn != nil {
		return c.failOn
	}
	c.sets++
	return c.MemoryStore.Set(ctx, key, value)
}

func newSession(t *testing.T) (*session.Session, *countingStore, *state.Persister) {
	t.Helper()

	store := &countingStore{MemoryStore: state.NewMemoryStore()}
	persister := state.NewPersister(store)
	return session.Open(context.Background(), persister, nil), store, persister
}

func TestOpen_DefaultsWhenEmpty(t *testing.T) {
	t.Parallel()

	sess, _, _ := newSession(t)

	assert.Equal(t, state.WelcomeContent, sess.Document().Text())
	assert.Equal(t, theme.LightPastel, sess.State().Theme)
	assert.False(t, sess.Dirty())
}

func TestFlush_OnlyWhenDirty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sess, store, _ := newSession(t)

	saved, err := sess.Flush(ctx)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Zero(t, store.sets)

	sess.Document().Append("\nmore")
	assert.True(t, sess.Dirty())

	saved, err = sess.Flush(ctx)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 1, store.sets)
	assert.False(t, sess.Dirty())

	saved, err = sess.Flush(ctx)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 1, store.sets)
}

func TestUpdate_MarksDirtyAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sess, _, persister := newSession(t)

	sess.Update(func(st *state.EditorState) {
		st.CycleTheme()
		st.ToggleTOC()
		st.Content = "# Replaced"
	})

	assert.True(t, sess.Dirty())
	assert.Equal(t, "# Replaced", sess.Document().Text())

	require.NoError(t, sess.Save(ctx))

	loaded := persister.Load(ctx)
	assert.Equal(t, theme.SoftLavender, loaded.Theme)
	assert.True(t, loaded.ShowTOC)
	assert.Equal(t, "# Replaced", loaded.Content)
	assert.Equal(t, loaded.LastSaved, sess.LastSaved())
}

func TestSave_Unconditional(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sess, store, _ := newSession(t)

	require.NoError(t, sess.Save(ctx))
	require.NoError(t, sess.Save(ctx))
	assert.Equal(t, 2, store.sets)
}

func TestSave_FailureKeepsDirty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sess, store, _ := newSession(t)

	sess.SetContent("changed")
	store.failOn = errors.New("disk full")

	_, err := sess.Flush(ctx)
	require.Error(t, err)
	assert.True(t, sess.Dirty())
}

func TestReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sess, _, persister := newSession(t)

	sess.SetContent("draft")
	require.NoError(t, sess.Save(ctx))

	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	require.NoError(t, sess.Reset(ctx, now))

	assert.Equal(t, state.WelcomeContent, sess.Document().Text())
	assert.False(t, sess.Dirty())
	assert.Equal(t, now, sess.LastSaved())

	_, err := persister.Inspect(ctx)
	require.ErrorIs(t, err, state.ErrNotFound)
}
