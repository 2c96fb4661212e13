package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// Built is the serialized form of one built entity.
type Built struct {
	Line     int    `json:"line"`
	Relation string `json:"relation"`
	Type     string `json:"type"`
	Entity   any    `json:"entity"`
}

// Writer writes built entities as JSON lines.
type Writer struct {
	enc *json.Encoder
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// Write writes one built entity.
func (w *Writer) Write(b Built) error {
	if err := w.enc.Encode(b); err != nil {
		return fmt.Errorf("failed to write %s entity: %w", b.Relation, err)
	}

	return nil
}
