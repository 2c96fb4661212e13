// Package diagnostic provides structured errors and warnings collected
// while importing a stream of relation records.
//
// Key capabilities:
//   - Unknown relation types, skipped or fatal depending on policy
//   - User references degraded to null for lack of a destination account
//   - Construction failures for individual records
//   - Per-code counts for summaries
package diagnostic
