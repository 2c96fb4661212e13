// Package rewrite remaps foreign identifiers in an exported relation record
// into the destination id space.
//
// Both passes mutate the record in place and touch nothing but the
// attributes listed below.
//
// Key capabilities:
//   - Users: author_id, assignee_id and updated_by_id through a members.Mapper;
//     ids with no destination account become null and are reported
//   - Projects: project_id, gl_project_id and target_project_id stamped with
//     the destination project; source_project_id set to SourceProjectSentinel
package rewrite
