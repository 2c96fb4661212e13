// Package members maps user ids from the source instance to user ids on the
// destination.
//
// A Map is immutable once built, so it is safe for concurrent reads.
//
// # File format
//
//	members:
//	  7: 107      # old user id: new user id
//	  9: 109
//	note_authors: # old ids whose accounts are gone but whose names were kept
//	  - 12
package members
