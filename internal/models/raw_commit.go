package models

import "time"

// RawCommit is a provider-shaped commit record as returned by a commit
// source, before normalization. Optional fields may be missing; the
// normalizer degrades them to safe defaults.
type RawCommit struct {
	// SHA is the full commit hash
	SHA string
	// Message is the raw commit message
	Message string
	// AuthorLogin is the hosting-service login of the author, if known
	AuthorLogin string
	// AuthorName is the git author name, used when AuthorLogin is missing
	AuthorName string
	// Date is the author date
	Date time.Time
	// Branch the record was fetched from; empty if unknown
	Branch string
	// ParentCount is the number of parent commits (>1 = merge commit)
	ParentCount int
}
