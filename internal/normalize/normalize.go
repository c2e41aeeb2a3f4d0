// Package normalize converts provider-shaped commit records into the
// pipeline's Commit entity and tags each with an advisory work category.
package normalize

import (
	"strings"

	"github.com/wahlandcase/standup/internal/models"
)

// Normalize maps one raw record to a Commit. It is pure and never fails:
// missing optional fields degrade to defaults instead.
func Normalize(raw models.RawCommit, repo string) models.Commit {
	author := raw.AuthorLogin
	if author == "" {
		author = raw.AuthorName
	}
	if author == "" {
		author = "Unknown"
	}

	return models.Commit{
		Repo:      repo,
		SHA:       raw.SHA,
		Message:   raw.Message,
		Branch:    raw.Branch,
		Timestamp: raw.Date,
		Author:    author,
		Category:  DetectCategory(raw.Message),
	}
}

// NormalizeAll maps a batch of raw records for one repository. Merge commits
// are dropped here so every source shares the same filter.
func NormalizeAll(raws []models.RawCommit, repo string) []models.Commit {
	commits := make([]models.Commit, 0, len(raws))
	for _, raw := range raws {
		// Merge commits carry no work of their own
		if raw.ParentCount > 1 {
			continue
		}
		commits = append(commits, Normalize(raw, repo))
	}
	return commits
}

// categoryPrefixes maps first-line prefixes to categories. Order matters:
// longer prefixes are listed before their shorter variants.
var categoryPrefixes = []struct {
	prefix   string
	category models.Category
}{
	{"bugfix", models.CategoryFix},
	{"fixes", models.CategoryFix},
	{"fixed", models.CategoryFix},
	{"fix", models.CategoryFix},
	{"hotfix", models.CategoryFix},
	{"feature", models.CategoryFeature},
	{"feat", models.CategoryFeature},
	{"add", models.CategoryFeature},
	{"update", models.CategoryUpdate},
	{"improve", models.CategoryUpdate},
	{"refactor", models.CategoryRefactor},
	{"docs", models.CategoryDocs},
	{"doc", models.CategoryDocs},
	{"chore", models.CategoryChore},
	{"tests", models.CategoryTest},
	{"test", models.CategoryTest},
	{"wip", models.CategoryWIP},
	{"todo", models.CategoryWIP},
}

// DetectCategory inspects the first line of a commit message for a
// conventional prefix, case-insensitively. Prefixes may be bare words
// ("fix login"), conventional-commit style ("fix:", "fix(auth):") or the
// capitalized form ("Fix:"). Unrecognized messages are "general".
func DetectCategory(message string) models.Category {
	line := message
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.ToLower(strings.TrimSpace(line))

	for _, p := range categoryPrefixes {
		rest, ok := strings.CutPrefix(line, p.prefix)
		if !ok {
			continue
		}
		// A prefix only counts at a word boundary so "features" isn't "feat"
		// and "additional" isn't "add".
		if rest == "" {
			return p.category
		}
		switch rest[0] {
		case ' ', ':', '(', '!', '-', '/':
			return p.category
		}
	}
	return models.CategoryGeneral
}
