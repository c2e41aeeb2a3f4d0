package models

import "time"

// Category is an advisory work-category tag derived from the first line of a
// commit message. It only influences downstream phrasing, never aggregation.
type Category string

const (
	CategoryFix      Category = "fix"
	CategoryFeature  Category = "feature"
	CategoryUpdate   Category = "update"
	CategoryRefactor Category = "refactor"
	CategoryDocs     Category = "docs"
	CategoryChore    Category = "chore"
	CategoryTest     Category = "test"
	CategoryWIP      Category = "wip"
	CategoryGeneral  Category = "general"
)

// Commit is one unit of work fetched from a commit source
type Commit struct {
	// Repo is the owning repository in "owner/name" form
	Repo string `json:"repo"`
	// SHA is the full commit hash, unique within Repo
	SHA string `json:"sha"`
	// Message is the full commit message (first line = summary)
	Message string `json:"message"`
	// Branch the commit was fetched from; empty if unknown
	Branch string `json:"branch"`
	// Timestamp is the author date, used for windowing and ordering
	Timestamp time.Time `json:"date"`
	// Author is the identity used to filter commits by user
	Author string `json:"author"`
	// Category is the advisory work-category tag
	Category Category `json:"category"`
}

// ShortSHA returns the abbreviated hash used in report listings
func (c Commit) ShortSHA() string {
	if len(c.SHA) <= 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// Summary returns the first line of the commit message
func (c Commit) Summary() string {
	for i := 0; i < len(c.Message); i++ {
		if c.Message[i] == '\n' {
			return c.Message[:i]
		}
	}
	return c.Message
}
