// Package setup is the interactive first-run wizard. It walks the user
// through credentials, provider choice and repositories, then persists the
// result through internal/config.
package setup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wahlandcase/standup/internal/config"
	"github.com/wahlandcase/standup/internal/github"

	tea "github.com/charmbracelet/bubbletea"
)

// Step is one wizard screen
type Step int

const (
	StepToken Step = iota
	StepProvider
	StepProviderKey
	StepUsername
	StepRepos
	StepDays
	StepFormat
	StepDone
)

var providerChoices = []struct {
	name  string
	label string
}{
	{"gemini", "Gemini (Google AI, free tier available)"},
	{"openai", "OpenAI (GPT models)"},
	{"anthropic", "Anthropic (Claude models)"},
	{"local", "Local template (no AI, no API calls)"},
}

var formatChoices = []string{"text", "json"}

// Model is the wizard state
type Model struct {
	cfg *config.Config

	step       Step
	input      string
	choice     int
	repos      []config.RepoConfig
	repoInput  string
	errMessage string
	saveErr    error
	quit       bool
}

// New builds the wizard around an existing config so saved values show as
// defaults and only missing ones must be typed.
func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Model{cfg: cfg, step: StepToken, input: cfg.GitHub.Token, repos: cfg.Repos}
}

// Run executes the wizard and returns the saved configuration
func Run(cfg *config.Config) (*config.Config, error) {
	final, err := tea.NewProgram(New(cfg)).Run()
	if err != nil {
		return nil, fmt.Errorf("setup wizard: %w", err)
	}
	m := final.(Model)
	if m.quit {
		return nil, fmt.Errorf("setup aborted")
	}
	if m.saveErr != nil {
		return nil, fmt.Errorf("save config: %w", m.saveErr)
	}
	return m.cfg, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyUp:
		if m.isChoiceStep() && m.choice > 0 {
			m.choice--
		}
		return m, nil
	case tea.KeyDown:
		if m.isChoiceStep() && m.choice < m.choiceCount()-1 {
			m.choice++
		}
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		if !m.isChoiceStep() {
			m.input += string(keyMsg.Runes)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) isChoiceStep() bool {
	return m.step == StepProvider || m.step == StepFormat
}

func (m Model) choiceCount() int {
	if m.step == StepProvider {
		return len(providerChoices)
	}
	return len(formatChoices)
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	m.errMessage = ""

	switch m.step {
	case StepToken:
		token := strings.TrimSpace(m.input)
		if token == "" {
			m.errMessage = "A GitHub token is required"
			return m, nil
		}
		m.cfg.GitHub.Token = token
		m.step = StepProvider
		m.choice = providerIndex(m.cfg.AI.Provider)

	case StepProvider:
		m.cfg.AI.Provider = providerChoices[m.choice].name
		if m.cfg.AI.Provider == "local" || m.cfg.APIKey() != "" {
			m.step = StepUsername
			m.input = m.cfg.GitHub.Username
		} else {
			m.step = StepProviderKey
			m.input = ""
		}

	case StepProviderKey:
		key := strings.TrimSpace(m.input)
		if key == "" {
			m.errMessage = "An API key is required for " + m.cfg.AI.Provider
			return m, nil
		}
		switch m.cfg.AI.Provider {
		case "openai":
			m.cfg.AI.OpenAIKey = key
		case "anthropic":
			m.cfg.AI.AnthropicKey = key
		case "gemini":
			m.cfg.AI.GeminiKey = key
		}
		m.step = StepUsername
		m.input = m.cfg.GitHub.Username

	case StepUsername:
		m.cfg.GitHub.Username = strings.TrimSpace(m.input)
		m.step = StepRepos
		m.input = ""

	case StepRepos:
		entry := strings.TrimSpace(m.input)
		if entry == "" {
			if len(m.repos) == 0 {
				m.errMessage = "Enter at least one repository"
				return m, nil
			}
			m.cfg.Repos = m.repos
			m.step = StepDays
			m.input = strconv.Itoa(max(m.cfg.Report.Days, 1))
			return m, nil
		}
		repo, branch := splitRepoEntry(entry)
		if err := github.ValidateRepo(repo); err != nil {
			m.errMessage = "Use owner/repo or owner/repo@branch"
			return m, nil
		}
		m.repos = append(m.repos, config.RepoConfig{Name: repo, Branch: branch})
		m.input = ""

	case StepDays:
		days, err := strconv.Atoi(strings.TrimSpace(m.input))
		if err != nil || days < 1 {
			m.errMessage = "Days must be a positive number"
			return m, nil
		}
		m.cfg.Report.Days = days
		m.step = StepFormat
		m.choice = formatIndex(m.cfg.Report.Format)

	case StepFormat:
		m.cfg.Report.Format = formatChoices[m.choice]
		m.saveErr = m.cfg.Save()
		m.step = StepDone
		return m, tea.Quit
	}

	return m, nil
}

// splitRepoEntry parses "owner/repo" or "owner/repo@branch"
func splitRepoEntry(entry string) (repo, branch string) {
	repo, branch, _ = strings.Cut(entry, "@")
	return repo, branch
}

func providerIndex(name string) int {
	for i, p := range providerChoices {
		if p.name == name {
			return i
		}
	}
	return 0
}

func formatIndex(name string) int {
	for i, f := range formatChoices {
		if f == name {
			return i
		}
	}
	return 0
}
