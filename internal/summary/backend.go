// Package summary turns aggregated commit activity into a standup report,
// either through an AI text-generation provider or a deterministic local
// template. Backends share one contract and are chosen at construction time.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/wahlandcase/standup/internal/models"
)

// Backend generates a standup summary from aggregated activity
type Backend interface {
	// Name identifies the backend for progress and degradation messages
	Name() string
	Generate(ctx context.Context, activity models.AggregatedActivity) (models.StandupSummary, error)
}

// Config selects and parameterizes a backend
type Config struct {
	// Provider is one of "openai", "anthropic", "gemini" or "local"
	Provider string
	// APIKey for the chosen provider; unused for local
	APIKey string
	// Timeout per provider request
	Timeout time.Duration
	// FallbackLocal degrades to the local template when the AI call fails
	// instead of aborting the run
	FallbackLocal bool
	// OnDegrade is called when a fallback is taken; nil = silent
	OnDegrade func(backend string, err error)
}

// New builds the configured backend. Unknown providers are an error so typos
// in config surface immediately instead of silently templating.
func New(cfg Config) (Backend, error) {
	backend, err := newBase(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.FallbackLocal {
		if _, isLocal := backend.(*Local); !isLocal {
			backend = &fallbackBackend{primary: backend, onDegrade: cfg.OnDegrade}
		}
	}
	return backend, nil
}

func newBase(cfg Config) (Backend, error) {
	switch cfg.Provider {
	case "local", "":
		return &Local{}, nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("summary: openai provider requires an API key")
		}
		return NewAI(NewOpenAI(cfg.APIKey, cfg.Timeout)), nil
	case "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("summary: anthropic provider requires an API key")
		}
		return NewAI(NewAnthropic(cfg.APIKey, cfg.Timeout)), nil
	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("summary: gemini provider requires an API key")
		}
		return NewAI(NewGemini(cfg.APIKey, cfg.Timeout)), nil
	default:
		return nil, fmt.Errorf("summary: unknown provider %q", cfg.Provider)
	}
}

// fallbackBackend degrades to the local template when the primary fails
type fallbackBackend struct {
	primary   Backend
	local     Local
	onDegrade func(backend string, err error)
}

func (f *fallbackBackend) Name() string { return f.primary.Name() }

func (f *fallbackBackend) Generate(ctx context.Context, activity models.AggregatedActivity) (models.StandupSummary, error) {
	out, err := f.primary.Generate(ctx, activity)
	if err == nil {
		return out, nil
	}
	if f.onDegrade != nil {
		f.onDegrade(f.primary.Name(), err)
	}
	return f.local.Generate(ctx, activity)
}
