package model

import (
	"time"
)

// Timestamps are the creation and update times shared by every entity.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Issue represents a project issue.
type Issue struct {
	ImportState `json:"-"`

	ID           int64  `json:"id,omitempty"`
	IID          int64  `json:"iid"`
	ProjectID    int64  `json:"project_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	State        string `json:"state"` // "opened", "closed", "reopened"
	Confidential bool   `json:"confidential"`
	AuthorID     *int64 `json:"author_id"`
	AssigneeID   *int64 `json:"assignee_id"`
	UpdatedByID  *int64 `json:"updated_by_id"`
	MilestoneID  *int64 `json:"milestone_id"`
	Position     int    `json:"position"`
	BranchName   string `json:"branch_name"`

	Timestamps
}

// Note is a comment on an issue, merge request, snippet or commit.
type Note struct {
	ImportState `json:"-"`

	ID           int64  `json:"id,omitempty"`
	Note         string `json:"note"`
	NoteableType string `json:"noteable_type"`
	NoteableID   *int64 `json:"noteable_id"`
	ProjectID    int64  `json:"project_id"`
	AuthorID     *int64 `json:"author_id"`
	UpdatedByID  *int64 `json:"updated_by_id"`
	Attachment   string `json:"attachment"`
	LineCode     string `json:"line_code"`
	CommitID     string `json:"commit_id"`
	System       bool   `json:"system"`
	StDiff       string `json:"st_diff"`

	Timestamps
}

// MergeRequest links a source branch to a target branch. It belongs to its
// target project and has no project_id of its own.
type MergeRequest struct {
	ImportState `json:"-"`

	ID              int64  `json:"id,omitempty"`
	IID             int64  `json:"iid"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	SourceBranch    string `json:"source_branch"`
	TargetBranch    string `json:"target_branch"`
	SourceProjectID int64  `json:"source_project_id"`
	TargetProjectID int64  `json:"target_project_id"`
	AuthorID        *int64 `json:"author_id"`
	AssigneeID      *int64 `json:"assignee_id"`
	UpdatedByID     *int64 `json:"updated_by_id"`
	MilestoneID     *int64 `json:"milestone_id"`
	State           string `json:"state"`
	MergeStatus     string `json:"merge_status"`
	WorkInProgress  bool   `json:"work_in_progress"`
	Position        int    `json:"position"`

	Timestamps
}

// MergeRequestDiff is a snapshot of a merge request's changes.
type MergeRequestDiff struct {
	ID             int64  `json:"id,omitempty"`
	MergeRequestID int64  `json:"merge_request_id"`
	State          string `json:"state"`
	BaseCommitSHA  string `json:"base_commit_sha"`
	HeadCommitSHA  string `json:"head_commit_sha"`
	RealSize       string `json:"real_size"`

	Timestamps
}

// Label is a project label.
type Label struct {
	ID          int64  `json:"id,omitempty"`
	ProjectID   int64  `json:"project_id"`
	Title       string `json:"title"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Template    bool   `json:"template"`

	Timestamps
}

// Milestone groups issues and merge requests under a due date.
type Milestone struct {
	ID          int64      `json:"id,omitempty"`
	IID         int64      `json:"iid"`
	ProjectID   int64      `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	State       string     `json:"state"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	Timestamps
}

// ProjectSnippet is a snippet owned by a project.
type ProjectSnippet struct {
	ImportState `json:"-"`

	ID              int64      `json:"id,omitempty"`
	ProjectID       int64      `json:"project_id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	FileName        string     `json:"file_name"`
	AuthorID        *int64     `json:"author_id"`
	VisibilityLevel int        `json:"visibility_level"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`

	Timestamps
}

// CiCommit is a CI pipeline for one commit. It predates project_id and links
// to its project through gl_project_id.
type CiCommit struct {
	ImportState `json:"-"`

	ID          int64      `json:"id,omitempty"`
	GlProjectID int64      `json:"gl_project_id"`
	SHA         string     `json:"sha"`
	BeforeSHA   string     `json:"before_sha"`
	Ref         string     `json:"ref"`
	Tag         bool       `json:"tag"`
	Status      string     `json:"status"`
	YAMLErrors  string     `json:"yaml_errors"`
	Duration    *int64     `json:"duration"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`

	Timestamps
}

// CommitStatus is one job result reported against a CI commit.
type CommitStatus struct {
	ImportState `json:"-"`

	ID           int64      `json:"id,omitempty"`
	CommitID     *int64     `json:"commit_id"`
	GlProjectID  int64      `json:"gl_project_id"`
	Name         string     `json:"name"`
	Stage        string     `json:"stage"`
	Status       string     `json:"status"`
	Ref          string     `json:"ref"`
	Description  string     `json:"description"`
	AllowFailure bool       `json:"allow_failure"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`

	Timestamps
}

// ProjectMember grants a user access to a project.
type ProjectMember struct {
	ID                int64  `json:"id,omitempty"`
	ProjectID         int64  `json:"project_id"`
	UserID            *int64 `json:"user_id"`
	AccessLevel       int    `json:"access_level"`
	NotificationLevel int    `json:"notification_level"`

	Timestamps
}

// Event is an activity feed entry.
type Event struct {
	ImportState `json:"-"`

	ID         int64  `json:"id,omitempty"`
	ProjectID  int64  `json:"project_id"`
	AuthorID   *int64 `json:"author_id"`
	Action     int    `json:"action"`
	TargetID   *int64 `json:"target_id"`
	TargetType string `json:"target_type"`
	Title      string `json:"title"`
	Data       string `json:"data"`

	Timestamps
}
