// Package record provides the flat attribute mapping that carries one exported
// relation row through the import.
//
// A Record is owned by the caller. Operations in the rewrite, authorship and
// factory packages mutate it in place; callers that need the original row after
// a factory call must pass a Clone.
//
// Key capabilities:
//   - Presence checks that distinguish a missing key from a null value
//   - Destructive removal that returns the removed value
//   - Id normalization for values decoded from JSON (json.Number, float64, ints)
package record
