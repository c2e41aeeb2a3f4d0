package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wahlandcase/standup/internal/models"
)

// maxPromptCommits bounds the prompt size. When the activity holds more
// commits than this, only the most recent ones are sent and the prompt says
// so, to stay under provider request limits.
const maxPromptCommits = 50

const systemPrompt = "You are an assistant that helps developers create concise and " +
	"informative standup reports based on their recent commits. Respond with two " +
	"sections titled \"Yesterday's Accomplishments\" and \"Today's Plan\", each a " +
	"list of short bullet points."

// BuildPrompt formats the activity into the user prompt sent to a provider
func BuildPrompt(activity models.AggregatedActivity) string {
	commits, truncated := recentCommits(activity, maxPromptCommits)

	var b strings.Builder
	b.WriteString("I need to give a daily standup based on my commits.\nHere are the commits:\n\n")
	for i, c := range commits {
		branch := ""
		if c.Branch != "" {
			branch = " [" + c.Branch + "]"
		}
		fmt.Fprintf(&b, "%d. [%s%s] %s (sha: %s)\n", i+1, c.Repo, branch, c.Summary(), c.ShortSHA())
	}
	if truncated > 0 {
		fmt.Fprintf(&b, "\n(%d older commits omitted for brevity.)\n", truncated)
	}
	b.WriteString("\nPlease write a concise and professional standup report that:\n")
	b.WriteString("1. Summarizes what I accomplished based on these commits\n")
	b.WriteString("2. Groups related work together\n")
	b.WriteString("3. Explains the impact of the changes where possible\n")
	b.WriteString("4. Mentions any challenges apparent from the commit messages\n")
	b.WriteString("5. Includes what I plan to work on next, inferred from the commits\n")
	b.WriteString("\nKeep it under 2 minutes when spoken aloud.\n")
	return b.String()
}

// recentCommits returns up to limit commits across all repositories, newest
// last, plus how many older ones were dropped. Ordering is deterministic:
// timestamp ascending with sha tie-break, same as the aggregator.
func recentCommits(activity models.AggregatedActivity, limit int) ([]models.Commit, int) {
	all := activity.All()
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Timestamp.Equal(all[j].Timestamp) {
			return all[i].Timestamp.Before(all[j].Timestamp)
		}
		return all[i].SHA < all[j].SHA
	})
	if len(all) <= limit {
		return all, 0
	}
	return all[len(all)-limit:], len(all) - limit
}
