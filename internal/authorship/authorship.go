package authorship

import (
	"fmt"
	"strings"

	"relation-factory/internal/members"
	"relation-factory/internal/record"
	"relation-factory/internal/rewrite"
)

// BlankNote replaces an empty body before the footer is appended.
const BlankNote = "*Blank note*"

const (
	authorAttr    = "author_id"
	authorRecord  = "author"
	noteAttr      = "note"
	updatedAtAttr = "updated_at"
)

// Preserve rewrites the authorship of a note record in place. It returns the
// author reference when it could not be mapped.
func Preserve(rec record.Record, mapper members.Mapper) []rewrite.MissingReference {
	var missing []rewrite.MissingReference

	old := rec[authorAttr]

	newID, ok := rewrite.MapUser(mapper, old)
	if ok {
		rec[authorAttr] = newID
	} else {
		rec[authorAttr] = nil

		if old != nil {
			missing = append(missing, rewrite.MissingReference{Attribute: authorAttr, OldID: old})
		}
	}

	author, _ := rec.Delete(authorRecord)

	oldID, isID := record.ID(old)
	if !isID || !mapper.IsNoteAuthor(oldID) {
		return missing
	}

	if record.Blank(rec[noteAttr]) {
		rec[noteAttr] = BlankNote
	}

	rec[noteAttr] = record.Text(rec[noteAttr]) + Footer(authorName(author), rec.String(updatedAtAttr))

	return missing
}

// Footer renders the attribution appended to a note. Sub-second precision is
// dropped from updatedAt.
func Footer(authorName, updatedAt string) string {
	timestamp, _, _ := strings.Cut(updatedAt, ".")

	return fmt.Sprintf("\n\n *By %s on %s (imported from GitLab project)*", authorName, timestamp)
}

func authorName(author any) string {
	sub, ok := record.As(author)
	if !ok {
		return ""
	}

	return sub.String("name")
}
