package models

// AggregatedActivity groups deduplicated commits by repository.
// Repos preserves first-seen order so rendering is deterministic; every entry
// in ByRepo holds at least one commit, sorted oldest to newest.
type AggregatedActivity struct {
	Repos  []string            `json:"repos"`
	ByRepo map[string][]Commit `json:"by_repo"`
}

// Total returns the number of commits across all repositories
func (a AggregatedActivity) Total() int {
	n := 0
	for _, commits := range a.ByRepo {
		n += len(commits)
	}
	return n
}

// Empty reports whether no repository contributed any commits
func (a AggregatedActivity) Empty() bool {
	return len(a.Repos) == 0
}

// All returns every commit in repository order, oldest to newest per repo
func (a AggregatedActivity) All() []Commit {
	out := make([]Commit, 0, a.Total())
	for _, repo := range a.Repos {
		out = append(out, a.ByRepo[repo]...)
	}
	return out
}
