// Package gitlocal reads commits from a local clone instead of the GitHub
// API, for offline runs against repositories already on disk.
package gitlocal

import (
	"context"
	"fmt"

	"github.com/wahlandcase/standup/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Source reads commits from one local repository clone
type Source struct {
	// Path is the clone's working directory
	Path string
}

// IsRepo checks whether path is a git repository
func IsRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// ListCommits walks the log of the configured branch (or HEAD) and returns
// raw records within the window.
func (s Source) ListCommits(ctx context.Context, repo string, window models.CommitWindow) ([]models.RawCommit, error) {
	r, err := git.PlainOpen(s.Path)
	if err != nil {
		return nil, &models.RepoError{Repo: repo, Err: fmt.Errorf("open %s: %w", s.Path, err)}
	}

	branch := window.Branch(repo)
	from, branchName, err := resolveStart(r, branch)
	if err != nil {
		return nil, &models.RepoError{Repo: repo, Err: err}
	}

	since := window.Since
	iter, err := r.Log(&git.LogOptions{From: from, Since: &since})
	if err != nil {
		return nil, &models.RepoError{Repo: repo, Err: fmt.Errorf("read log: %w", err)}
	}
	defer iter.Close()

	var raw []models.RawCommit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		// LogOptions.Since filters on committer time; enforce the author
		// date bound the rest of the pipeline uses.
		if c.Author.When.Before(window.Since) {
			return nil
		}
		raw = append(raw, models.RawCommit{
			SHA:         c.Hash.String(),
			Message:     c.Message,
			AuthorName:  c.Author.Name,
			Date:        c.Author.When,
			Branch:      branchName,
			ParentCount: c.NumParents(),
		})
		return nil
	})
	if err != nil {
		return nil, &models.RepoError{Repo: repo, Err: err}
	}

	return raw, nil
}

// resolveStart picks the hash to walk from: the named branch if given
// (local ref first, then origin), otherwise HEAD.
func resolveStart(r *git.Repository, branch string) (plumbing.Hash, string, error) {
	if branch != "" {
		if ref, err := r.Reference(plumbing.NewBranchReferenceName(branch), true); err == nil {
			return ref.Hash(), branch, nil
		}
		if ref, err := r.Reference(plumbing.NewRemoteReferenceName("origin", branch), true); err == nil {
			return ref.Hash(), branch, nil
		}
		return plumbing.ZeroHash, "", fmt.Errorf("branch %q not found", branch)
	}

	head, err := r.Head()
	if err != nil {
		return plumbing.ZeroHash, "", fmt.Errorf("resolve HEAD: %w", err)
	}
	name := ""
	if head.Name().IsBranch() {
		name = head.Name().Short()
	}
	return head.Hash(), name, nil
}
