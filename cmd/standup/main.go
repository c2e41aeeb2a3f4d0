package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/standup/internal/termfix"

import (
	"fmt"
	"os"
	"time"

	"github.com/wahlandcase/standup/internal/app"
	"github.com/wahlandcase/standup/internal/config"
	"github.com/wahlandcase/standup/internal/gitlocal"
	"github.com/wahlandcase/standup/internal/github"
	"github.com/wahlandcase/standup/internal/models"
	"github.com/wahlandcase/standup/internal/render"
	"github.com/wahlandcase/standup/internal/setup"
	"github.com/wahlandcase/standup/internal/summary"
	"github.com/wahlandcase/standup/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type flags struct {
	githubToken     string
	openAIKey       string
	anthropicKey    string
	geminiKey       string
	provider        string
	repos           []string
	branches        []string
	days            int
	username        string
	output          string
	save            bool
	out             string
	local           bool
	fallbackLocal   bool
	source          string
	path            string
	timeout         time.Duration
	interactive     bool
	resetConfig     bool
}

func main() {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "standup",
		Short: "Generate a daily standup report from your recent commits",
		Long: "standup fetches your recent commits across one or more repositories and\n" +
			"turns them into a short status report, either through an AI provider or a\n" +
			"deterministic local template.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	fl := rootCmd.Flags()
	fl.StringVar(&f.githubToken, "github-token", "", "GitHub personal access token")
	fl.StringVar(&f.openAIKey, "openai-api-key", "", "OpenAI API key")
	fl.StringVar(&f.anthropicKey, "anthropic-api-key", "", "Anthropic API key")
	fl.StringVar(&f.geminiKey, "gemini-api-key", "", "Google Gemini API key")
	fl.StringVar(&f.provider, "provider", "", "AI provider: openai, anthropic, gemini or local")
	fl.StringSliceVar(&f.repos, "repos", nil, "repositories to fetch from (owner/repo)")
	fl.StringSliceVar(&f.branches, "branches", nil, "branch per repo, same order as --repos")
	fl.IntVar(&f.days, "days", 0, "number of days to look back for commits")
	fl.StringVar(&f.username, "username", "", "GitHub username to filter commits by")
	fl.StringVar(&f.output, "output", "", "output format: text or json")
	fl.BoolVar(&f.save, "save", false, "save the report to standup_YYYYMMDD.<ext>")
	fl.StringVar(&f.out, "out", "", "write the report to this file")
	fl.BoolVar(&f.local, "local", false, "use the local template backend (no API calls)")
	fl.BoolVar(&f.fallbackLocal, "fallback-local", false, "fall back to the local template when the AI call fails")
	fl.StringVar(&f.source, "source", "github", "commit source: github or local")
	fl.StringVar(&f.path, "path", "", "local clone path when --source local")
	fl.DurationVar(&f.timeout, "timeout", 30*time.Second, "per-request timeout")
	fl.BoolVar(&f.interactive, "interactive", false, "run the interactive setup wizard")
	fl.BoolVar(&f.resetConfig, "reset-config", false, "delete the saved configuration")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, f flags) error {
	if f.resetConfig {
		if err := config.Reset(); err != nil {
			return fmt.Errorf("reset config: %w", err)
		}
		if !f.interactive {
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset.")
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if f.interactive {
		cfg, err = setup.Run(cfg)
		if err != nil {
			return err
		}
	}

	applyFlags(cfg, f, cmd)

	opts, err := buildOptions(cfg, f, cmd)
	if err != nil {
		return err
	}

	_, err = app.Run(cmd.Context(), opts)
	return err
}

// applyFlags lets command line arguments override the stored configuration
func applyFlags(cfg *config.Config, f flags, cmd *cobra.Command) {
	if f.githubToken != "" {
		cfg.GitHub.Token = f.githubToken
	}
	if f.openAIKey != "" {
		cfg.AI.OpenAIKey = f.openAIKey
	}
	if f.anthropicKey != "" {
		cfg.AI.AnthropicKey = f.anthropicKey
	}
	if f.geminiKey != "" {
		cfg.AI.GeminiKey = f.geminiKey
	}
	if f.provider != "" {
		cfg.AI.Provider = f.provider
	}
	if f.username != "" {
		cfg.GitHub.Username = f.username
	}
	if f.output != "" {
		cfg.Report.Format = f.output
	}
	if f.days > 0 {
		cfg.Report.Days = f.days
	}
	if f.save {
		cfg.Report.Save = true
	}
	if f.fallbackLocal {
		cfg.AI.FallbackLocal = true
	}
	if f.local {
		cfg.AI.Provider = "local"
	}

	if len(f.repos) > 0 {
		repos := make([]config.RepoConfig, 0, len(f.repos))
		if len(f.branches) > 0 && len(f.branches) != len(f.repos) {
			fmt.Fprintln(cmd.ErrOrStderr(),
				color.YellowString("warning: number of branches must match number of repos, using default branches"))
			f.branches = nil
		}
		for i, name := range f.repos {
			rc := config.RepoConfig{Name: name}
			if i < len(f.branches) {
				rc.Branch = f.branches[i]
			}
			repos = append(repos, rc)
		}
		cfg.Repos = repos
	}
}

func buildOptions(cfg *config.Config, f flags, cmd *cobra.Command) (app.Options, error) {
	format, err := render.ParseFormat(cfg.Report.Format)
	if err != nil {
		return app.Options{}, err
	}

	if cfg.Report.Days < 1 {
		cfg.Report.Days = 1
	}
	window := models.CommitWindow{
		Username: cfg.GitHub.Username,
		Since:    time.Now().AddDate(0, 0, -cfg.Report.Days),
		Repos:    cfg.RepoNames(),
		Branches: cfg.Branches(),
	}

	var source app.Source
	switch f.source {
	case "github", "":
		if cfg.GitHub.Token == "" {
			return app.Options{}, fmt.Errorf("a GitHub token is required: set GITHUB_TOKEN, use --github-token, or run with --interactive")
		}
		source = github.NewClient(cfg.GitHub.Token, f.timeout)
	case "local":
		if f.path == "" {
			return app.Options{}, fmt.Errorf("--source local requires --path")
		}
		if !gitlocal.IsRepo(f.path) {
			return app.Options{}, fmt.Errorf("%s is not a git repository", f.path)
		}
		source = gitlocal.Source{Path: f.path}
	default:
		return app.Options{}, fmt.Errorf("unknown source %q, expected github or local", f.source)
	}

	stderr := cmd.ErrOrStderr()
	backend, err := summary.New(summary.Config{
		Provider:      cfg.AI.Provider,
		APIKey:        cfg.APIKey(),
		Timeout:       f.timeout,
		FallbackLocal: cfg.AI.FallbackLocal,
		OnDegrade: func(name string, err error) {
			fmt.Fprintln(stderr, color.YellowString("warning: %s backend failed (%v), using the local template", name, err))
		},
	})
	if err != nil {
		return app.Options{}, err
	}

	return app.Options{
		Window:   window,
		Source:   source,
		Backend:  backend,
		Format:   format,
		Dest:     render.Destination{Path: f.out, Save: cfg.Report.Save},
		Stdout:   cmd.OutOrStdout(),
		Stderr:   stderr,
		Progress: ui.NewProgressPrinter(stderr),
	}, nil
}
