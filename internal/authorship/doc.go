// Package authorship keeps the original author of an imported note visible
// when that author has no account at the destination.
//
// Preserve remaps author_id, drops the embedded author sub-record and, for
// note-eligible authors, appends an attribution footer to the note body:
//
//	*Blank note*
//
//	 *By Jane on 2020-01-01T00:00:00 (imported from GitLab project)*
package authorship
