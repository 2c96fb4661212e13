package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const exportStream = `{"relation": "issues", "attributes": {"id": 1, "title": "Broken", "project_id": 5, "author_id": 7, "updated_by_id": 9}}
{"relation": "notes", "attributes": {"id": 2, "note": "", "project_id": 5, "author_id": 12, "author": {"name": "Alice"}, "updated_at": "2016-06-14T15:02:47.967Z"}}
{"relation": "pipelines_of_doom", "attributes": {"id": 3}}
{"relation": "merge_requests", "attributes": {"id": 4, "source_project_id": 5, "target_project_id": 5}}
`

const membersFile = `members:
  7: 107
  12: 112
note_authors:
  - 12
`

type builtLine struct {
	Line     int            `json:"line"`
	Relation string         `json:"relation"`
	Type     string         `json:"type"`
	Entity   map[string]any `json:"entity"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func readBuilt(t *testing.T, path string) []builtLine {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines []builtLine

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		var b builtLine
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &b))
		lines = append(lines, b)
	}

	require.NoError(t, scanner.Err())

	return lines
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "export.ndjson", exportStream)
	membersPath := writeFile(t, dir, "members.yaml", membersFile)
	output := filepath.Join(dir, "out.ndjson")

	t.Chdir(dir)

	cmd := NewRootCmd()

	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"import",
		"--project-id", "42",
		"--members", membersPath,
		"--input", input,
		"--output", output,
		"--on-unknown", "skip",
	})

	require.NoError(t, cmd.Execute())

	lines := readBuilt(t, output)
	require.Len(t, lines, 3)

	issue := lines[0]
	assert.Equal(t, "Issue", issue.Type)
	assert.Equal(t, 1, issue.Line)
	assert.NotContains(t, issue.Entity, "id")
	assert.EqualValues(t, 42, issue.Entity["project_id"])
	assert.EqualValues(t, 107, issue.Entity["author_id"])
	assert.Nil(t, issue.Entity["updated_by_id"])

	note := lines[1]
	assert.Equal(t, "Note", note.Type)
	// 12 maps to 112, which the user pass then finds unmapped.
	assert.Nil(t, note.Entity["author_id"])
	assert.Equal(t,
		"*Blank note*\n\n *By Alice on 2016-06-14T15:02:47 (imported from GitLab project)*",
		note.Entity["note"])

	mr := lines[2]
	assert.Equal(t, 4, mr.Line)
	assert.Equal(t, "MergeRequest", mr.Type)
	assert.EqualValues(t, 42, mr.Entity["target_project_id"])
	assert.EqualValues(t, -1, mr.Entity["source_project_id"])

	out := stderr.String()
	assert.Contains(t, out, "unknown-relation")
	assert.Contains(t, out, "missing-mapping")
	assert.Contains(t, out, "read 4, built 3, skipped 1, degraded references 2")
}

func TestImportCommand_AbortsOnUnknownRelation(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "export.ndjson", exportStream)
	output := filepath.Join(dir, "out.ndjson")

	t.Chdir(dir)

	cmd := NewRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import", "--project-id", "42", "--input", input, "--output", output})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "PipelinesOfDoom")

	// Entities before the failure were still written.
	assert.Len(t, readBuilt(t, output), 2)
}

func TestImportCommand_ConfigFileAndStdin(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "relation-factory.yaml", "project_id: 9\non_unknown: skip\n")

	t.Chdir(dir)

	cmd := NewRootCmd()

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(`{"relation": "labels", "attributes": {"id": 8, "title": "bug", "project_id": 1}}` + "\n"))
	cmd.SetArgs([]string{"import"})

	require.NoError(t, cmd.Execute())

	var b builtLine
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &b))
	assert.Equal(t, "Label", b.Type)
	assert.EqualValues(t, 9, b.Entity["project_id"])
}

type failingCloseFile struct {
	bytes.Buffer
}

func (f *failingCloseFile) Close() error {
	return errors.New("disk quota exceeded")
}

func TestImportCommand_ReportsOutputCloseError(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "export.ndjson", `{"relation": "labels", "attributes": {"title": "bug"}}`+"\n")

	t.Chdir(dir)

	out := &failingCloseFile{}
	orig := createOutput
	createOutput = func(string) (io.WriteCloser, error) { return out, nil }

	t.Cleanup(func() { createOutput = orig })

	cmd := NewRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import", "--project-id", "42", "--input", input, "--output", "labels.ndjson"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to close output labels.ndjson")
	assert.Contains(t, err.Error(), "disk quota exceeded")

	// The entity itself was written before the close failed.
	assert.Contains(t, out.String(), `"type":"Label"`)
}

func TestImportCommand_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import", "--on-unknown", "ignore"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "project_id must be positive")
}

func TestRelationsCommand(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		cmd := NewRootCmd()

		var stdout bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetArgs([]string{"relations"})

		require.NoError(t, cmd.Execute())

		out := stdout.String()
		assert.Contains(t, out, "ci_commits")
		assert.Contains(t, out, "ci.Commit")
		assert.Contains(t, out, "merge_requests")
	})

	t.Run("yaml", func(t *testing.T) {
		cmd := NewRootCmd()

		var stdout bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetArgs([]string{"relations", "--format", "yaml"})

		require.NoError(t, cmd.Execute())

		var infos []relationInfo
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &infos))

		byType := make(map[string]relationInfo, len(infos))
		for _, info := range infos {
			byType[info.Type] = info
		}

		snippet := byType["ProjectSnippet"]
		assert.Equal(t, "snippets", snippet.Relation)
		assert.True(t, snippet.Override)
		assert.True(t, snippet.Importing)

		label := byType["Label"]
		assert.Equal(t, "labels", label.Relation)
		assert.False(t, label.Override)
		assert.False(t, label.Importing)
		assert.Contains(t, label.Attributes, "project_id")

		assert.True(t, byType["Note"].Authored)
	})

	t.Run("unknown format", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"relations", "--format", "xml"})

		require.Error(t, cmd.Execute())
	})
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCmd()

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "relation-factory v"+Version+"\n", stdout.String())
}
