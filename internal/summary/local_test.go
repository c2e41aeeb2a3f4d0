package summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/standup/internal/models"
)

func testActivity() models.AggregatedActivity {
	t0 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return models.AggregatedActivity{
		Repos: []string{"a/b", "c/d"},
		ByRepo: map[string][]models.Commit{
			"a/b": {
				{Repo: "a/b", SHA: "1111111aaaa", Message: "Fix: login bug", Branch: "main", Timestamp: t0, Author: "alice", Category: models.CategoryFix},
				{Repo: "a/b", SHA: "2222222bbbb", Message: "Feature: add logout", Branch: "main", Timestamp: t0.Add(time.Hour), Author: "alice", Category: models.CategoryFeature},
				{Repo: "a/b", SHA: "3333333cccc", Message: "Fix: session expiry", Branch: "main", Timestamp: t0.Add(2 * time.Hour), Author: "alice", Category: models.CategoryFix},
			},
			"c/d": {
				{Repo: "c/d", SHA: "4444444dddd", Message: "wip: migration tooling", Timestamp: t0.Add(30 * time.Minute), Author: "alice", Category: models.CategoryWIP},
			},
		},
	}
}

func TestLocalGenerate(t *testing.T) {
	t.Parallel()

	summary, err := Local{}.Generate(context.Background(), testActivity())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"3 commits in a/b: fixes and a feature",
		"1 commit in c/d: in-progress work",
	}, summary.Accomplishments)
	assert.Equal(t, []string{
		"Continue work in a/b",
		"Continue work in c/d",
		"Finish in-progress work in c/d",
	}, summary.Plan)
	assert.Equal(t, testActivity(), summary.Activity)
}

func TestLocalGenerateDeterministic(t *testing.T) {
	t.Parallel()

	activity := testActivity()
	first, err := Local{}.Generate(context.Background(), activity)
	require.NoError(t, err)
	second, err := Local{}.Generate(context.Background(), activity)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLocalGenerateEmptyActivity(t *testing.T) {
	t.Parallel()

	summary, err := Local{}.Generate(context.Background(), models.AggregatedActivity{})
	require.NoError(t, err)
	assert.Empty(t, summary.Accomplishments)
	assert.Empty(t, summary.Plan)
}

func TestJoinList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", joinList(nil))
	assert.Equal(t, "fixes", joinList([]string{"fixes"}))
	assert.Equal(t, "fixes and features", joinList([]string{"fixes", "features"}))
	assert.Equal(t, "fixes, features and chores", joinList([]string{"fixes", "features", "chores"}))
}
