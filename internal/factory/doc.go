// Package factory rebuilds one destination entity from one exported relation
// record.
//
// Create runs the steps in a fixed order:
//
//  1. Resolve the relation name to a registered type.
//  2. For note-like types, preserve authorship.
//  3. Rewrite user references, then project references.
//  4. Strip id so the destination assigns its own.
//  5. Materialize the unsaved entity.
//
// The record passed in is mutated in place and must not be reused; pass
// rec.Clone() to keep the original. A Factory holds no per-call state and is
// safe for concurrent use on distinct records.
package factory
