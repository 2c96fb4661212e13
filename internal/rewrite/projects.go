package rewrite

import (
	"relation-factory/internal/record"
)

// SourceProjectSentinel replaces source_project_id. Cross-project merge
// request sources are never remapped.
const SourceProjectSentinel int64 = -1

// AttributeDeclarer reports whether a type declares an attribute.
type AttributeDeclarer interface {
	HasAttribute(name string) bool
}

// Projects rewrites project references for the destination project.
// project_id is kept only when the type declares it.
func Projects(rec record.Record, typ AttributeDeclarer, projectID int64) {
	delete(rec, "project_id")

	if typ.HasAttribute("project_id") {
		rec["project_id"] = projectID
	}

	if rec.Has("gl_project_id") {
		rec["gl_project_id"] = projectID
	}

	if rec.Has("target_project_id") {
		rec["target_project_id"] = projectID
	}

	if rec.Has("source_project_id") {
		rec["source_project_id"] = SourceProjectSentinel
	}
}
