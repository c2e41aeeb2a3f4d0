package models

import "fmt"

// RepoError is a per-repository recoverable failure. The run continues with
// the remaining repositories and reports these alongside the output.
type RepoError struct {
	Repo string
	Err  error
}

func (e *RepoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Repo, e.Err)
}

func (e *RepoError) Unwrap() error {
	return e.Err
}
