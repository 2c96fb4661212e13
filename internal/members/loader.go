package members

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a members map.
type File struct {
	Members     map[int64]int64 `yaml:"members"`
	NoteAuthors []int64         `yaml:"note_authors,omitempty"`
}

// LoadFile loads a members map from a YAML file.
func LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read members file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a members map.
func Parse(data []byte) (*Map, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse members YAML: %w", err)
	}

	return f.Map(), nil
}

// Map builds the in-memory Mapper.
func (f *File) Map() *Map {
	return NewMap(f.Members, f.NoteAuthors)
}

// Marshal serializes a members map to YAML.
func Marshal(m *Map) ([]byte, error) {
	return yaml.Marshal(&File{
		Members:     m.ids,
		NoteAuthors: m.NoteAuthors(),
	})
}
