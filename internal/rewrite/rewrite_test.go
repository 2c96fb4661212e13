package rewrite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"relation-factory/internal/members"
	"relation-factory/internal/record"
)

type attrs map[string]bool

func (a attrs) HasAttribute(name string) bool { return a[name] }

func TestUsers(t *testing.T) {
	t.Parallel()

	mapper := members.NewMap(map[int64]int64{7: 107}, nil)
	rec := record.Record{"author_id": 7, "assignee_id": 7, "updated_by_id": 9}

	missing := Users(rec, mapper)

	assert.Equal(t, record.Record{
		"author_id":     int64(107),
		"assignee_id":   int64(107),
		"updated_by_id": nil,
	}, rec)
	assert.Equal(t, []MissingReference{{Attribute: "updated_by_id", OldID: 9}}, missing)
}

func TestUsersLeavesNullAndAbsentAlone(t *testing.T) {
	t.Parallel()

	mapper := members.NewMap(map[int64]int64{7: 107}, nil)
	rec := record.Record{"author_id": nil, "title": "x"}

	missing := Users(rec, mapper)

	assert.Empty(t, missing)
	assert.Equal(t, record.Record{"author_id": nil, "title": "x"}, rec)
}

func TestUsersRunTwiceFollowsChain(t *testing.T) {
	t.Parallel()

	mapper := members.NewMap(map[int64]int64{7: 107, 107: 1007}, nil)
	rec := record.Record{"author_id": json.Number("7")}

	assert.Empty(t, Users(rec, mapper))
	assert.Equal(t, int64(107), rec["author_id"])

	assert.Empty(t, Users(rec, mapper))
	assert.Equal(t, int64(1007), rec["author_id"])
}

func TestUsersAcceptsUnsignedIDs(t *testing.T) {
	t.Parallel()

	mapper := members.NewMap(map[int64]int64{7: 107, 9: 109}, nil)
	rec := record.Record{"author_id": uint(7), "assignee_id": uint16(9)}

	assert.Empty(t, Users(rec, mapper))
	assert.Equal(t, record.Record{"author_id": int64(107), "assignee_id": int64(109)}, rec)
}

func TestUsersNonIDValueBecomesNull(t *testing.T) {
	t.Parallel()

	mapper := members.NewMap(map[int64]int64{7: 107}, nil)
	rec := record.Record{"assignee_id": "7"}

	missing := Users(rec, mapper)

	assert.Nil(t, rec["assignee_id"])
	assert.Len(t, missing, 1)
	assert.Equal(t, "assignee_id=7", missing[0].String())
}

func TestProjects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		declares attrs
		input    record.Record
		expected record.Record
	}{
		{
			name:     "declared project_id is stamped",
			declares: attrs{"project_id": true},
			input:    record.Record{"project_id": 3, "title": "x"},
			expected: record.Record{"project_id": int64(42), "title": "x"},
		},
		{
			name:     "declared project_id is added when absent",
			declares: attrs{"project_id": true},
			input:    record.Record{},
			expected: record.Record{"project_id": int64(42)},
		},
		{
			name:     "undeclared project_id is dropped",
			declares: attrs{},
			input:    record.Record{"project_id": 3},
			expected: record.Record{},
		},
		{
			name:     "gl_project_id is stamped",
			declares: attrs{},
			input:    record.Record{"gl_project_id": 3},
			expected: record.Record{"gl_project_id": int64(42)},
		},
		{
			name:     "merge request project links",
			declares: attrs{"source_project_id": true, "target_project_id": true},
			input:    record.Record{"source_project_id": 3, "target_project_id": 3},
			expected: record.Record{"source_project_id": int64(-1), "target_project_id": int64(42)},
		},
		{
			name:     "null source_project_id still becomes the sentinel",
			declares: attrs{},
			input:    record.Record{"source_project_id": nil},
			expected: record.Record{"source_project_id": SourceProjectSentinel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			Projects(tt.input, tt.declares, 42)
			assert.Equal(t, tt.expected, tt.input)

			// A second pass changes nothing.
			Projects(tt.input, tt.declares, 42)
			assert.Equal(t, tt.expected, tt.input)
		})
	}
}
