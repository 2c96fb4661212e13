// Package naming converts between relation names used in project exports and
// the type identifiers registered for destination entities.
//
// Relation names are pluralized snake_case identifiers ("merge_requests").
// Type identifiers are singular CamelCase names ("MergeRequest"), optionally
// qualified with a namespace ("ci.Commit").
//
// Key functions:
//   - Tokenize: splits snake_case, kebab-case and CamelCase identifiers
//   - Classify: relation name -> conventional type identifier
//   - Tableize: type identifier -> conventional relation name
//   - Closest: nearest candidate by edit distance, for "did you mean" hints
package naming
