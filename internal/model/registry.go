package model

import (
	"relation-factory/internal/relation"
)

// NewRegistry returns a registry holding every destination entity type.
func NewRegistry() *relation.Registry {
	r := relation.NewRegistry()

	relation.Add[Issue](r, "Issue")
	relation.Add[Note](r, "Note", relation.Authored())
	relation.Add[MergeRequest](r, "MergeRequest")
	relation.Add[MergeRequestDiff](r, "MergeRequestDiff")
	relation.Add[Label](r, "Label")
	relation.Add[Milestone](r, "Milestone")
	relation.Add[ProjectSnippet](r, "ProjectSnippet")
	relation.Add[CiCommit](r, "ci.Commit")
	relation.Add[CommitStatus](r, "CommitStatus")
	relation.Add[ProjectMember](r, "ProjectMember")
	relation.Add[Event](r, "Event")

	return r
}
