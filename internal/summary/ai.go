package summary

import (
	"context"
	"fmt"

	"github.com/wahlandcase/standup/internal/models"
)

// Provider is one text-generation capability: prompt in, free text out.
// All AI vendors are interchangeable behind it.
type Provider interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AI generates the summary by delegating prose to a Provider and parsing the
// reply back into the structured summary shape.
type AI struct {
	provider Provider
}

// NewAI wraps a provider in the shared backend contract
func NewAI(p Provider) *AI {
	return &AI{provider: p}
}

func (a *AI) Name() string { return a.provider.Name() }

func (a *AI) Generate(ctx context.Context, activity models.AggregatedActivity) (models.StandupSummary, error) {
	reply, err := a.provider.Complete(ctx, systemPrompt, BuildPrompt(activity))
	if err != nil {
		return models.StandupSummary{}, fmt.Errorf("summary: %s: %w", a.provider.Name(), err)
	}

	accomplishments, plan := ParseSections(reply)
	return models.StandupSummary{
		Accomplishments: accomplishments,
		Plan:            plan,
		Activity:        activity,
	}, nil
}
