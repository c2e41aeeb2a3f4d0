// Package aggregate merges normalized commits from all sources into one
// deduplicated, deterministically ordered activity set.
package aggregate

import (
	"sort"
	"strings"

	"github.com/wahlandcase/standup/internal/models"
)

// Aggregate filters, deduplicates and groups commits. The result does not
// depend on the input order beyond the repository order given by
// window.Repos: commits are filtered to window.Username (case-insensitive,
// empty = keep all) and window.Since (inclusive), collapsed on (repo, sha),
// grouped per repository and sorted ascending by timestamp with the sha as
// tie-break. Repositories with no surviving commits are omitted.
func Aggregate(commits []models.Commit, window models.CommitWindow) models.AggregatedActivity {
	type key struct {
		repo string
		sha  string
	}
	seen := make(map[key]struct{}, len(commits))
	byRepo := make(map[string][]models.Commit)

	for _, c := range commits {
		if !matchesUser(c.Author, window.Username) {
			continue
		}
		if c.Timestamp.Before(window.Since) {
			continue
		}
		k := key{repo: c.Repo, sha: c.SHA}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		byRepo[c.Repo] = append(byRepo[c.Repo], c)
	}

	activity := models.AggregatedActivity{ByRepo: make(map[string][]models.Commit, len(byRepo))}
	for _, repo := range repoOrder(window.Repos, commits) {
		bucket, ok := byRepo[repo]
		if !ok || len(bucket) == 0 {
			continue
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			if !bucket[i].Timestamp.Equal(bucket[j].Timestamp) {
				return bucket[i].Timestamp.Before(bucket[j].Timestamp)
			}
			return bucket[i].SHA < bucket[j].SHA
		})
		activity.Repos = append(activity.Repos, repo)
		activity.ByRepo[repo] = bucket
		delete(byRepo, repo)
	}

	return activity
}

// repoOrder yields each repository once: configured repositories first in
// their configured order, then any repository only present in the input, in
// first-seen order. Keeps the merge independent of fetch completion order.
func repoOrder(configured []string, commits []models.Commit) []string {
	order := make([]string, 0, len(configured))
	index := make(map[string]struct{}, len(configured))
	for _, repo := range configured {
		if _, ok := index[repo]; ok {
			continue
		}
		index[repo] = struct{}{}
		order = append(order, repo)
	}
	for _, c := range commits {
		if _, ok := index[c.Repo]; ok {
			continue
		}
		index[c.Repo] = struct{}{}
		order = append(order, c.Repo)
	}
	return order
}

func matchesUser(author, username string) bool {
	if username == "" {
		return true
	}
	return strings.EqualFold(author, username)
}
