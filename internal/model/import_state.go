package model

// ImportState records whether an entity was created by an import. Embed it to
// opt a type into the importing marker.
type ImportState struct {
	importing bool
}

// SetImporting sets the importing marker.
func (s *ImportState) SetImporting(importing bool) {
	s.importing = importing
}

// Importing reports whether the entity was created by an import.
func (s *ImportState) Importing() bool {
	return s.importing
}
