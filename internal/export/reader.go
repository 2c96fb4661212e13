package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"relation-factory/internal/record"
)

// Entry is one relation record from the stream.
type Entry struct {
	// Line is the 1-based position of the entry in the stream.
	Line       int           `json:"-"`
	Relation   string        `json:"relation"`
	Attributes record.Record `json:"attributes"`
}

// Reader decodes entries from a stream.
type Reader struct {
	dec  *json.Decoder
	line int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	return &Reader{dec: dec}
}

// Next returns the next entry, or io.EOF when the stream is exhausted.
func (r *Reader) Next() (*Entry, error) {
	var e Entry

	err := r.dec.Decode(&e)
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	r.line++

	if err != nil {
		return nil, fmt.Errorf("failed to decode entry %d: %w", r.line, err)
	}

	if e.Relation == "" {
		return nil, fmt.Errorf("entry %d: missing relation name", r.line)
	}

	if e.Attributes == nil {
		e.Attributes = record.Record{}
	}

	e.Line = r.line

	return &e, nil
}

// ReadAll decodes every entry in r.
func ReadAll(r io.Reader) ([]*Entry, error) {
	reader := NewReader(r)

	var entries []*Entry

	for {
		e, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return entries, nil
		}

		if err != nil {
			return entries, err
		}

		entries = append(entries, e)
	}
}
