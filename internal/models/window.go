package models

import "time"

// CommitWindow bounds which commits are eligible for a run. It is built once
// from config and flags and never mutated afterwards.
type CommitWindow struct {
	// Username filters commits to this author (case-insensitive); empty = no filter
	Username string
	// Since is the inclusive lower bound on commit timestamps
	Since time.Time
	// Repos are the repositories to fetch, in "owner/name" form
	Repos []string
	// Branches maps a repo to the branch to fetch; missing = default branch
	Branches map[string]string
}

// Branch returns the configured branch for repo, or "" for the default branch
func (w CommitWindow) Branch(repo string) string {
	if w.Branches == nil {
		return ""
	}
	return w.Branches[repo]
}
