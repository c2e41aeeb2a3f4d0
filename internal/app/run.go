// Package app orchestrates one standup run: fetch commits from every
// configured repository, aggregate them, summarize, render and deliver.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/wahlandcase/standup/internal/aggregate"
	"github.com/wahlandcase/standup/internal/github"
	"github.com/wahlandcase/standup/internal/models"
	"github.com/wahlandcase/standup/internal/normalize"
	"github.com/wahlandcase/standup/internal/render"
	"github.com/wahlandcase/standup/internal/summary"
)

// ErrNoRepos means no repository was configured or passed on the command line
var ErrNoRepos = errors.New("at least one repository is required")

// Source is one commit source: the GitHub API client or a local clone reader
type Source interface {
	ListCommits(ctx context.Context, repo string, window models.CommitWindow) ([]models.RawCommit, error)
}

// Options carries everything one run needs. Built once in cmd and immutable
// during the run.
type Options struct {
	Window  models.CommitWindow
	Source  Source
	Backend summary.Backend
	Format  render.Format
	Dest    render.Destination

	// Stdout receives the rendered report, Stderr the progress and the
	// per-repository failure listing
	Stdout io.Writer
	Stderr io.Writer

	// Progress is called with status lines during the run; nil = silent
	Progress func(line string)
}

// Result reports what a run produced
type Result struct {
	Summary models.StandupSummary
	// SavedTo is the file path the report was written to, "" for stdout
	SavedTo string
	// RepoErrors are the per-repository failures the run survived
	RepoErrors []*models.RepoError
}

// Run executes the pipeline. Fatal failures (bad credentials, no repos,
// summary backend failure without fallback) return an error; per-repository
// failures are collected into the Result and reported on Stderr.
func Run(ctx context.Context, opts Options) (Result, error) {
	if len(opts.Window.Repos) == 0 {
		return Result{}, ErrNoRepos
	}

	commits, repoErrs, err := fetchAll(ctx, opts)
	if err != nil {
		return Result{}, err
	}

	activity := aggregate.Aggregate(commits, opts.Window)
	if activity.Empty() {
		opts.progress("No commits found for the specified time period.")
		reportRepoErrors(opts.Stderr, repoErrs)
		return Result{RepoErrors: repoErrs}, nil
	}
	opts.progress(fmt.Sprintf("Found a total of %d commits", activity.Total()))

	opts.progress(fmt.Sprintf("Generating standup with the %s backend...", opts.Backend.Name()))
	standup, err := opts.Backend.Generate(ctx, activity)
	if err != nil {
		return Result{}, fmt.Errorf("generate summary: %w", err)
	}

	content, err := render.Render(standup, opts.Format)
	if err != nil {
		return Result{}, err
	}

	savedTo, err := opts.Dest.Write(opts.Stdout, content, opts.Format)
	if err != nil {
		return Result{}, err
	}
	if savedTo != "" {
		opts.progress(fmt.Sprintf("Standup saved to %s", savedTo))
	}

	reportRepoErrors(opts.Stderr, repoErrs)
	return Result{Summary: standup, SavedTo: savedTo, RepoErrors: repoErrs}, nil
}

// fetchAll fans out one fetch per repository. Results are merged in window
// order, so the aggregate is identical no matter which fetch finishes first.
func fetchAll(ctx context.Context, opts Options) ([]models.Commit, []*models.RepoError, error) {
	type fetchResult struct {
		index   int
		commits []models.Commit
		err     error
	}

	results := make([]fetchResult, len(opts.Window.Repos))
	var wg sync.WaitGroup
	for i, repo := range opts.Window.Repos {
		opts.progress(fmt.Sprintf("Fetching commits from %s...", repo))
		wg.Add(1)
		go func(i int, repo string) {
			defer wg.Done()
			raw, err := opts.Source.ListCommits(ctx, repo, opts.Window)
			results[i] = fetchResult{
				index:   i,
				commits: normalize.NormalizeAll(raw, repo),
				err:     err,
			}
		}(i, repo)
	}
	wg.Wait()

	var commits []models.Commit
	var repoErrs []*models.RepoError
	for _, res := range results {
		if res.err != nil {
			if errors.Is(res.err, github.ErrBadCredentials) {
				return nil, nil, fmt.Errorf("github authentication failed: %w", res.err)
			}
			repoErrs = append(repoErrs, asRepoError(opts.Window.Repos[res.index], res.err))
			continue
		}
		commits = append(commits, res.commits...)
	}

	sort.SliceStable(repoErrs, func(i, j int) bool { return repoErrs[i].Repo < repoErrs[j].Repo })
	return commits, repoErrs, nil
}

func asRepoError(repo string, err error) *models.RepoError {
	var re *models.RepoError
	if errors.As(err, &re) {
		return re
	}
	return &models.RepoError{Repo: repo, Err: err}
}

func reportRepoErrors(w io.Writer, repoErrs []*models.RepoError) {
	if w == nil {
		return
	}
	for _, re := range repoErrs {
		fmt.Fprintf(w, "warning: skipped %s: %v\n", re.Repo, re.Err)
	}
}

func (o Options) progress(line string) {
	if o.Progress != nil {
		o.Progress(line)
	}
}
