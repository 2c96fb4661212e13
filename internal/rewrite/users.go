package rewrite

import (
	"fmt"

	"relation-factory/internal/members"
	"relation-factory/internal/record"
)

// UserReferences are the attributes that hold source user ids.
var UserReferences = []string{"author_id", "assignee_id", "updated_by_id"}

// MissingReference reports a user reference that had no destination account
// and was set to null.
type MissingReference struct {
	Attribute string
	OldID     any
}

func (m MissingReference) String() string {
	return fmt.Sprintf("%s=%v", m.Attribute, m.OldID)
}

// Users replaces each non-null user reference with its mapped id.
func Users(rec record.Record, mapper members.Mapper) []MissingReference {
	var missing []MissingReference

	for _, attr := range UserReferences {
		if !rec.Present(attr) {
			continue
		}

		old := rec[attr]

		newID, ok := MapUser(mapper, old)
		if ok {
			rec[attr] = newID
			continue
		}

		rec[attr] = nil
		missing = append(missing, MissingReference{Attribute: attr, OldID: old})
	}

	return missing
}

// MapUser maps a raw user reference value. Values that are not ids never map.
func MapUser(mapper members.Mapper, old any) (int64, bool) {
	id, ok := record.ID(old)
	if !ok {
		return 0, false
	}

	return mapper.Map(id)
}
