package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/wahlandcase/standup/internal/models"
)

// Local is the template backend: rule-based text assembly with no network
// calls. Same activity in, byte-identical summary out.
type Local struct{}

func (Local) Name() string { return "local" }

// categoryPhrases maps categories to report wording, in the fixed order they
// are listed in an accomplishment line.
var categoryPhrases = []struct {
	category models.Category
	singular string
	plural   string
}{
	{models.CategoryFix, "a fix", "fixes"},
	{models.CategoryFeature, "a feature", "features"},
	{models.CategoryUpdate, "an update", "updates"},
	{models.CategoryRefactor, "refactoring", "refactoring"},
	{models.CategoryDocs, "documentation", "documentation"},
	{models.CategoryChore, "a chore", "chores"},
	{models.CategoryTest, "test work", "test work"},
	{models.CategoryWIP, "in-progress work", "in-progress work"},
	{models.CategoryGeneral, "general changes", "general changes"},
}

func (Local) Generate(_ context.Context, activity models.AggregatedActivity) (models.StandupSummary, error) {
	summary := models.StandupSummary{Activity: activity}

	for _, repo := range activity.Repos {
		commits := activity.ByRepo[repo]
		summary.Accomplishments = append(summary.Accomplishments, accomplishmentLine(repo, commits))
	}

	for _, repo := range activity.Repos {
		summary.Plan = append(summary.Plan, fmt.Sprintf("Continue work in %s", repo))
		if hasCategory(activity.ByRepo[repo], models.CategoryWIP) {
			summary.Plan = append(summary.Plan, fmt.Sprintf("Finish in-progress work in %s", repo))
		}
	}

	return summary, nil
}

func accomplishmentLine(repo string, commits []models.Commit) string {
	counts := make(map[models.Category]int, len(commits))
	for _, c := range commits {
		counts[c.Category]++
	}

	var phrases []string
	for _, p := range categoryPhrases {
		n := counts[p.category]
		if n == 0 {
			continue
		}
		if n == 1 {
			phrases = append(phrases, p.singular)
		} else {
			phrases = append(phrases, p.plural)
		}
	}

	noun := "commits"
	if len(commits) == 1 {
		noun = "commit"
	}
	return fmt.Sprintf("%d %s in %s: %s", len(commits), noun, repo, joinList(phrases))
}

// joinList joins phrases English-style: "a, b and c"
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func hasCategory(commits []models.Commit, category models.Category) bool {
	for _, c := range commits {
		if c.Category == category {
			return true
		}
	}
	return false
}
