package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAndPresent(t *testing.T) {
	t.Parallel()

	r := Record{"author_id": nil, "title": "x"}

	assert.True(t, r.Has("author_id"))
	assert.False(t, r.Present("author_id"))
	assert.True(t, r.Present("title"))
	assert.False(t, r.Has("missing"))
}

func TestDelete(t *testing.T) {
	t.Parallel()

	r := Record{"id": 5}

	v, ok := r.Delete("id")
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.False(t, r.Has("id"))

	_, ok = r.Delete("id")
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	r := Record{"id": 1, "note": "hi"}
	c := r.Clone()
	delete(c, "id")

	assert.True(t, r.Has("id"))
	assert.Nil(t, Record(nil).Clone())
}

func TestSub(t *testing.T) {
	t.Parallel()

	r := Record{
		"author": map[string]any{"name": "Jane"},
		"other":  Record{"name": "John"},
		"flat":   "x",
	}

	sub, ok := r.Sub("author")
	require.True(t, ok)
	assert.Equal(t, "Jane", sub.String("name"))

	sub, ok = r.Sub("other")
	require.True(t, ok)
	assert.Equal(t, "John", sub.String("name"))

	_, ok = r.Sub("flat")
	assert.False(t, ok)
}

func TestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  any
		want   int64
		wantOK bool
	}{
		{"int", 7, 7, true},
		{"int64", int64(9), 9, true},
		{"int8", int8(-3), -3, true},
		{"int16", int16(300), 300, true},
		{"int32", int32(70000), 70000, true},
		{"uint", uint(7), 7, true},
		{"uint8", uint8(255), 255, true},
		{"uint16", uint16(65535), 65535, true},
		{"uint32", uint32(4000000000), 4000000000, true},
		{"uint64", uint64(42), 42, true},
		{"uint64 overflow", ^uint64(0), 0, false},
		{"float integral", float64(12), 12, true},
		{"float fractional", 1.5, 0, false},
		{"json number", json.Number("107"), 107, true},
		{"json number fractional", json.Number("1.5"), 0, false},
		{"string", "7", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, Blank(nil))
	assert.True(t, Blank(""))
	assert.True(t, Blank("  \n"))
	assert.False(t, Blank("note"))
	assert.Equal(t, "12", Text(json.Number("12")))
	assert.Equal(t, "3", Text(3))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, Record{"b": 1, "a": 2}.Keys())
}
