package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/standup/internal/models"
)

var since = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func testWindow() models.CommitWindow {
	return models.CommitWindow{Username: "alice", Since: since, Repos: []string{"a/b"}}
}

// apiCommit builds a REST-shaped commit record
func apiCommit(sha, message, login string, date time.Time, parents int) map[string]any {
	parentList := make([]map[string]string, parents)
	for i := range parentList {
		parentList[i] = map[string]string{"sha": fmt.Sprintf("parent%d", i)}
	}
	return map[string]any{
		"sha": sha,
		"commit": map[string]any{
			"message": message,
			"author":  map[string]any{"name": "Alice Smith", "date": date.Format(time.RFC3339)},
		},
		"author":  map[string]string{"login": login},
		"parents": parentList,
	}
}

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("token", time.Second).WithBaseURL(srv.URL)
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

func TestListCommitsSinglePage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/a/b/commits", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("author"))
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]any{
			apiCommit("aaa", "Fix: login bug", "alice", since.Add(time.Hour), 1),
			apiCommit("bbb", "Feature: add logout", "alice", since.Add(2*time.Hour), 1),
		})
	}))
	defer srv.Close()

	raw, err := newTestClient(srv).ListCommits(context.Background(), "a/b", testWindow())
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, "aaa", raw[0].SHA)
	assert.Equal(t, "alice", raw[0].AuthorLogin)
	assert.Equal(t, "Alice Smith", raw[0].AuthorName)
}

func TestListCommitsRecordsParentCount(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]any{
			apiCommit("merge", "Merge branch 'dev'", "alice", since.Add(time.Hour), 2),
			apiCommit("work", "Fix: real work", "alice", since.Add(time.Hour), 1),
		})
	}))
	defer srv.Close()

	raw, err := newTestClient(srv).ListCommits(context.Background(), "a/b", testWindow())
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, 2, raw[0].ParentCount, "merge parent count survives for the normalizer")
	assert.Equal(t, 1, raw[1].ParentCount)
}

func TestListCommitsPaginatesUntilShortPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 1 {
			full := make([]any, perPage)
			for i := range full {
				full[i] = apiCommit(fmt.Sprintf("page1-%03d", i), "work", "alice", since.Add(48*time.Hour), 1)
			}
			json.NewEncoder(w).Encode(full)
			return
		}
		json.NewEncoder(w).Encode([]any{
			apiCommit("page2-000", "older work", "alice", since.Add(time.Hour), 1),
		})
	}))
	defer srv.Close()

	raw, err := newTestClient(srv).ListCommits(context.Background(), "a/b", testWindow())
	require.NoError(t, err)
	assert.Len(t, raw, perPage+1)
}

func TestListCommitsStopsAtWindowBoundary(t *testing.T) {
	t.Parallel()

	var pagesServed int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed++
		full := make([]any, perPage)
		for i := range full {
			// Oldest entries on the page predate the window
			date := since.Add(time.Duration(perPage/2-i) * time.Hour)
			full[i] = apiCommit(fmt.Sprintf("sha-%03d", i), "work", "alice", date, 1)
		}
		json.NewEncoder(w).Encode(full)
	}))
	defer srv.Close()

	raw, err := newTestClient(srv).ListCommits(context.Background(), "a/b", testWindow())
	require.NoError(t, err)

	assert.Equal(t, 1, pagesServed, "crossing the boundary must stop pagination")
	for _, rc := range raw {
		assert.False(t, rc.Date.Before(since))
	}
}

func TestListCommitsBadCredentials(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).ListCommits(context.Background(), "a/b", testWindow())
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestListCommitsRepoNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).ListCommits(context.Background(), "a/b", testWindow())

	var unavailable *RepoUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "a/b", unavailable.Repo)
	assert.Equal(t, http.StatusNotFound, unavailable.StatusCode)
}

func TestListCommitsRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode([]any{
			apiCommit("aaa", "recovered", "alice", since.Add(time.Hour), 1),
		})
	}))
	defer srv.Close()

	raw, err := newTestClient(srv).ListCommits(context.Background(), "a/b", testWindow())
	require.NoError(t, err)
	assert.Len(t, raw, 1)
	assert.Equal(t, 3, calls)
}

func TestListCommitsRetryBudgetExhausted(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).ListCommits(context.Background(), "a/b", testWindow())

	var repoErr *models.RepoError
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, "a/b", repoErr.Repo)
	assert.Equal(t, maxAttempts, calls)
}

func TestListCommitsBacksOffOnRateLimit(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode([]any{
			apiCommit("aaa", "after limit", "alice", since.Add(time.Hour), 1),
		})
	}))
	defer srv.Close()

	var slept []time.Duration
	c := NewClient("token", time.Second).WithBaseURL(srv.URL)
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	raw, err := c.ListCommits(context.Background(), "a/b", testWindow())
	require.NoError(t, err)
	assert.Len(t, raw, 1)
	require.Len(t, slept, 1)
	assert.Equal(t, time.Second, slept[0])
}

func TestListCommitsRateLimitWaitHonorsContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewClient("token", time.Second).WithBaseURL(srv.URL).ListCommits(ctx, "a/b", testWindow())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second, "cancellation must interrupt the rate-limit wait")
}

func TestListCommitsBranchParam(t *testing.T) {
	t.Parallel()

	var gotSHA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSHA = r.URL.Query().Get("sha")
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	window := testWindow()
	window.Branches = map[string]string{"a/b": "dev"}

	_, err := newTestClient(srv).ListCommits(context.Background(), "a/b", window)
	require.NoError(t, err)
	assert.Equal(t, "dev", gotSHA)
}

func TestListCommitsRejectsFutureWindow(t *testing.T) {
	t.Parallel()

	window := testWindow()
	window.Since = time.Now().Add(24 * time.Hour)

	_, err := NewClient("token", time.Second).ListCommits(context.Background(), "a/b", window)
	assert.Error(t, err)
}

func TestValidateRepo(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRepo("owner/name"))
	assert.Error(t, ValidateRepo("just-a-name"))
	assert.Error(t, ValidateRepo("owner/"))
	assert.Error(t, ValidateRepo("/name"))
	assert.Error(t, ValidateRepo("a/b/c"))
}
