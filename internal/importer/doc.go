// Package importer drives the factory over an export stream, one relation
// record at a time and in stream order.
//
// It owns the abort-vs-skip decision for relations of unknown type and turns
// degraded user references into warnings. It does not persist anything:
// built entities are handed to an Emit callback.
package importer
