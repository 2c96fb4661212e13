// Package relation resolves relation names from a project export to the
// destination entity types that can be built from them.
//
// Resolution is static. A Registry is built once at startup and maps type
// identifiers to Descriptors; after that it is only read.
//
// # Lookup order
//
//  1. The fixed override table for irregular names
//     (snippets, ci_commits, statuses).
//  2. The naming convention: singularize and camelize the relation name
//     ("merge_requests" -> "MergeRequest") and look it up in the registry.
//
// Names that resolve to no registered type fail with ErrUnknownRelationType.
//
// # Capabilities
//
// A type opts into the importing marker by implementing Importer. Descriptors
// report this through SupportsImporting; nothing probes types at build time.
package relation
