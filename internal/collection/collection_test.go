package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pillars/internal/collection"
)

type note struct {
	ID   int
	Text string
	Done bool
}

func newNoteStore(seed ...note) *collection.Store[note] {
	return collection.New(
		func(n note) int { return n.ID },
		func(n note, id int) note { n.ID = id; return n },
		seed,
	)
}

func ids(items []note) []int {
	out := make([]int, len(items))
	for i, n := range items {
		out[i] = n.ID
	}

	return out
}

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	s := newNoteStore(note{ID: 1, Text: "a"}, note{ID: 2, Text: "b"})

	added := s.Add(note{Text: "c"})
	assert.Equal(t, 3, added.ID)

	added = s.Add(note{Text: "d"})
	assert.Equal(t, 4, added.ID)

	assert.Equal(t, []int{1, 2, 3, 4}, ids(s.List()))
}

func TestStore_AddAfterRemoveNeverReusesLiveID(t *testing.T) {
	// The source assigned ids as len+1, so deleting id=2 from [1 2 3] and
	// adding produced a second id=3. The monotonic counter must not.
	s := newNoteStore(note{ID: 1}, note{ID: 2}, note{ID: 3})

	s.Remove(2)

	added := s.Add(note{Text: "new"})
	assert.Equal(t, 4, added.ID)
	assert.Equal(t, []int{1, 3, 4}, ids(s.List()))
}

func TestStore_AddThenRemoveRestoresCollection(t *testing.T) {
	s := newNoteStore(note{ID: 1}, note{ID: 2})
	before := ids(s.List())

	added := s.Add(note{Text: "temp"})
	s.Remove(added.ID)

	assert.Equal(t, before, ids(s.List()))
}

func TestStore_Get(t *testing.T) {
	s := newNoteStore(note{ID: 1, Text: "a"})

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Text)

	_, err = s.Get(99)
	assert.ErrorIs(t, err, collection.ErrNotFound)
}

func TestStore_UpdateReplacesExactlyOneRecord(t *testing.T) {
	s := newNoteStore(note{ID: 1, Text: "a"}, note{ID: 2, Text: "b"}, note{ID: 3, Text: "c"})

	replaced := s.Update(note{ID: 2, Text: "edited"})
	assert.True(t, replaced)

	items := s.List()
	assert.Equal(t, []int{1, 2, 3}, ids(items))
	assert.Equal(t, "a", items[0].Text)
	assert.Equal(t, "edited", items[1].Text)
	assert.Equal(t, "c", items[2].Text)
}

func TestStore_UpdateAbsentIDIsNoOp(t *testing.T) {
	s := newNoteStore(note{ID: 1, Text: "a"})

	replaced := s.Update(note{ID: 42, Text: "ghost"})
	assert.False(t, replaced)
	assert.Equal(t, []int{1}, ids(s.List()))
}

func TestStore_RemoveAbsentIDIsNoOp(t *testing.T) {
	s := newNoteStore(note{ID: 1}, note{ID: 2})

	s.Remove(42)

	assert.Equal(t, []int{1, 2}, ids(s.List()))
}

func TestStore_Toggle(t *testing.T) {
	s := newNoteStore(note{ID: 1, Done: false})

	updated, ok := s.Toggle(1, func(n note) note { n.Done = !n.Done; return n })
	require.True(t, ok)
	assert.True(t, updated.Done)

	updated, ok = s.Toggle(1, func(n note) note { n.Done = !n.Done; return n })
	require.True(t, ok)
	assert.False(t, updated.Done)

	_, ok = s.Toggle(99, func(n note) note { return n })
	assert.False(t, ok)
}

func TestStore_ResetRestoresSeed(t *testing.T) {
	s := newNoteStore(note{ID: 1, Text: "a"})

	s.Add(note{Text: "b"})
	s.Remove(1)
	s.Reset()

	items := s.List()
	require.Len(t, items, 1)
	assert.Equal(t, note{ID: 1, Text: "a"}, items[0])

	// Counter is reseeded too: the next add follows the seed ids again.
	added := s.Add(note{Text: "c"})
	assert.Equal(t, 2, added.ID)
}
