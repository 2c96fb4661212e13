package members

import (
	"maps"
	"slices"

	"relation-factory/internal/common"
)

// Mapper resolves historical user ids to destination user ids.
type Mapper interface {
	// Map returns the destination id for oldID, or false when the account
	// does not exist at the destination.
	Map(oldID int64) (int64, bool)
	// IsNoteAuthor reports whether oldID is unmappable but its display name
	// was preserved for attribution.
	IsNoteAuthor(oldID int64) bool
}

// Map is an in-memory Mapper.
type Map struct {
	ids         map[int64]int64
	noteAuthors map[int64]struct{}
}

// NewMap builds a Map from an old -> new id table and the note-eligible authors.
func NewMap(ids map[int64]int64, noteAuthors []int64) *Map {
	return &Map{
		ids:         maps.Clone(ids),
		noteAuthors: common.Set(noteAuthors),
	}
}

// Map implements Mapper.
func (m *Map) Map(oldID int64) (int64, bool) {
	newID, ok := m.ids[oldID]
	return newID, ok
}

// IsNoteAuthor implements Mapper.
func (m *Map) IsNoteAuthor(oldID int64) bool {
	_, ok := m.noteAuthors[oldID]
	return ok
}

// Len returns the number of mapped users.
func (m *Map) Len() int {
	return len(m.ids)
}

// NoteAuthors returns the note-eligible author ids in ascending order.
func (m *Map) NoteAuthors() []int64 {
	return slices.Sorted(maps.Keys(m.noteAuthors))
}
