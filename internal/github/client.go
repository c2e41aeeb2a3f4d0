package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wahlandcase/standup/internal/models"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100
	maxAttempts    = 3
)

// ErrBadCredentials means the token was rejected. This is fatal for the whole
// run, unlike per-repository failures.
var ErrBadCredentials = errors.New("github: bad credentials")

// RepoUnavailableError means a single repository could not be read (missing
// or no access). The run skips the repository and continues.
type RepoUnavailableError struct {
	Repo       string
	StatusCode int
}

func (e *RepoUnavailableError) Error() string {
	return fmt.Sprintf("github: repository %s unavailable (status %d)", e.Repo, e.StatusCode)
}

// Client fetches commits from the GitHub REST API
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client

	// sleep is swappable in tests so backoff doesn't slow them down
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates a Client using the given token and per-request timeout
func NewClient(token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
		sleep:      sleepContext,
	}
}

// WithBaseURL points the client at a different API root. Used in tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimSuffix(base, "/")
	return c
}

// commitRecord mirrors the REST commit list response shape
type commitRecord struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
	Parents []struct {
		SHA string `json:"sha"`
	} `json:"parents"`
}

// ListCommits pages through commits for repo, newest first, until a short
// page or until the window's lower bound is crossed. Records older than
// window.Since on the boundary page are discarded.
func (c *Client) ListCommits(ctx context.Context, repo string, window models.CommitWindow) ([]models.RawCommit, error) {
	if err := ValidateRepo(repo); err != nil {
		return nil, err
	}
	if window.Since.After(time.Now()) {
		return nil, fmt.Errorf("github: window start %s is in the future", window.Since.Format(time.RFC3339))
	}

	branch := window.Branch(repo)

	var raw []models.RawCommit
	for page := 1; ; page++ {
		records, err := c.listPage(ctx, repo, window, branch, page)
		if err != nil {
			return nil, err
		}

		boundaryCrossed := false
		for _, rec := range records {
			if rec.Commit.Author.Date.Before(window.Since) {
				boundaryCrossed = true
				continue
			}
			rc := models.RawCommit{
				SHA:         rec.SHA,
				Message:     rec.Commit.Message,
				AuthorName:  rec.Commit.Author.Name,
				Date:        rec.Commit.Author.Date,
				Branch:      branch,
				ParentCount: len(rec.Parents),
			}
			if rec.Author != nil {
				rc.AuthorLogin = rec.Author.Login
			}
			raw = append(raw, rc)
		}

		if boundaryCrossed || len(records) < perPage {
			break
		}
	}

	return raw, nil
}

// listPage fetches one page, retrying transient failures with backoff and
// honoring rate-limit responses.
func (c *Client) listPage(ctx context.Context, repo string, window models.CommitWindow, branch string, page int) ([]commitRecord, error) {
	q := url.Values{}
	q.Set("since", window.Since.UTC().Format(time.RFC3339))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	if window.Username != "" {
		q.Set("author", window.Username)
	}
	if branch != "" {
		q.Set("sha", branch)
	}
	endpoint := fmt.Sprintf("%s/repos/%s/commits?%s", c.baseURL, repo, q.Encode())

	backoff := time.Second
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		records, retryAfter, err := c.doList(ctx, endpoint, repo)
		if err == nil {
			return records, nil
		}
		if !retryable(err) {
			return nil, err
		}
		lastErr = err

		wait := backoff
		if retryAfter > 0 {
			wait = retryAfter
		}
		if attempt < maxAttempts {
			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
			backoff *= 2
		}
	}
	return nil, &models.RepoError{Repo: repo, Err: lastErr}
}

// sleepContext blocks for d or until ctx is canceled, so a long rate-limit
// wait cannot outlive the run.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// transientError marks failures worth retrying
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func retryable(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// doList performs a single request. The second return value is a server
// supplied wait hint for rate-limit responses, zero otherwise.
func (c *Client) doList(ctx context.Context, endpoint, repo string) ([]commitRecord, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &transientError{fmt.Errorf("github: request failed: %w", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var records []commitRecord
		if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
			return nil, 0, fmt.Errorf("github: decode response: %w", err)
		}
		return records, 0, nil

	case resp.StatusCode == http.StatusUnauthorized:
		return nil, 0, ErrBadCredentials

	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		return nil, rateLimitWait(resp), &transientError{fmt.Errorf("github: rate limited (status %d)", resp.StatusCode)}

	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusForbidden:
		return nil, 0, &RepoUnavailableError{Repo: repo, StatusCode: resp.StatusCode}

	case resp.StatusCode >= 500:
		return nil, 0, &transientError{fmt.Errorf("github: server error (status %d)", resp.StatusCode)}

	default:
		return nil, 0, fmt.Errorf("github: unexpected status %s", resp.Status)
	}
}

// rateLimitWait reads Retry-After or X-RateLimit-Reset, capped at one minute
// so a distant reset doesn't stall the run.
func rateLimitWait(resp *http.Response) time.Duration {
	const maxWait = time.Minute

	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return min(time.Duration(secs)*time.Second, maxWait)
		}
	}
	if v := resp.Header.Get("X-RateLimit-Reset"); v != "" {
		if unix, err := strconv.ParseInt(v, 10, 64); err == nil {
			if wait := time.Until(time.Unix(unix, 0)); wait > 0 {
				return min(wait, maxWait)
			}
		}
	}
	return 0
}

// ValidateRepo checks the "owner/name" form
func ValidateRepo(repo string) error {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("github: invalid repository %q, expected owner/name", repo)
	}
	return nil
}
