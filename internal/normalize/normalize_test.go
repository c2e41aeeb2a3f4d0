package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/standup/internal/models"
)

func TestDetectCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message  string
		expected models.Category
	}{
		{"Fix: login bug", models.CategoryFix},
		{"fix(auth): reject expired tokens", models.CategoryFix},
		{"FIXES race in worker pool", models.CategoryFix},
		{"hotfix: rollback schema change", models.CategoryFix},
		{"Feature: add logout", models.CategoryFeature},
		{"feat: streaming uploads", models.CategoryFeature},
		{"Add retry budget to fetcher", models.CategoryFeature},
		{"Update: bump deps", models.CategoryUpdate},
		{"improve cache hit rate", models.CategoryUpdate},
		{"Refactor: split client", models.CategoryRefactor},
		{"docs: describe config file", models.CategoryDocs},
		{"chore: regen mocks", models.CategoryChore},
		{"test: cover window boundary", models.CategoryTest},
		{"WIP: half-done migration", models.CategoryWIP},
		{"todo: finish error paths", models.CategoryWIP},
		{"Merge remote branch", models.CategoryGeneral},
		{"features are not a prefix match", models.CategoryGeneral},
		{"additional cleanup", models.CategoryGeneral},
		{"", models.CategoryGeneral},
		{"fix", models.CategoryFix},
		{"Fix: login bug\nrefactor: unrelated body line", models.CategoryFix},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectCategory(tt.message), "message %q", tt.message)
	}
}

func TestNormalizePrefersLogin(t *testing.T) {
	t.Parallel()

	raw := models.RawCommit{
		SHA:         "abc123",
		Message:     "Fix: login bug",
		AuthorLogin: "alice",
		AuthorName:  "Alice Smith",
		Date:        time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		Branch:      "main",
	}

	c := Normalize(raw, "a/b")
	assert.Equal(t, "a/b", c.Repo)
	assert.Equal(t, "alice", c.Author)
	assert.Equal(t, "main", c.Branch)
	assert.Equal(t, models.CategoryFix, c.Category)
}

func TestNormalizeDegradesMissingFields(t *testing.T) {
	t.Parallel()

	c := Normalize(models.RawCommit{SHA: "abc123"}, "a/b")

	assert.Equal(t, "Unknown", c.Author)
	assert.Equal(t, "", c.Message)
	assert.Equal(t, "", c.Branch)
	assert.Equal(t, models.CategoryGeneral, c.Category)
}

func TestNormalizeFallsBackToAuthorName(t *testing.T) {
	t.Parallel()

	c := Normalize(models.RawCommit{SHA: "abc123", AuthorName: "Alice Smith"}, "a/b")
	assert.Equal(t, "Alice Smith", c.Author)
}

func TestNormalizeAll(t *testing.T) {
	t.Parallel()

	raws := []models.RawCommit{
		{SHA: "aaa", Message: "one"},
		{SHA: "bbb", Message: "two"},
	}

	commits := NormalizeAll(raws, "a/b")
	assert.Len(t, commits, 2)
	for _, c := range commits {
		assert.Equal(t, "a/b", c.Repo)
	}
}

func TestNormalizeAllDropsMergeCommits(t *testing.T) {
	t.Parallel()

	raws := []models.RawCommit{
		{SHA: "aaa", Message: "Fix: real work", ParentCount: 1},
		{SHA: "bbb", Message: "Merge branch 'dev'", ParentCount: 2},
		{SHA: "ccc", Message: "octopus", ParentCount: 3},
		{SHA: "ddd", Message: "initial commit"},
	}

	commits := NormalizeAll(raws, "a/b")
	require.Len(t, commits, 2)
	assert.Equal(t, "aaa", commits[0].SHA)
	assert.Equal(t, "ddd", commits[1].SHA)
}
