package setup

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/standup/internal/ui"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(ui.RenderBanner())
	b.WriteString("\n\n")

	switch m.step {
	case StepToken:
		b.WriteString(ui.SectionHeader("GITHUB TOKEN", ui.ColorCyan))
		b.WriteString("\n\n")
		b.WriteString(ui.HintStyle.Render("  Stored locally in your config file (mode 0600).") + "\n\n")
		b.WriteString("  " + ui.Field("Token", masked(m.input), true) + "\n")

	case StepProvider:
		b.WriteString(ui.SectionHeader("AI PROVIDER", ui.ColorCyan))
		b.WriteString("\n\n")
		for i, p := range providerChoices {
			b.WriteString("  " + ui.Choice(p.label, i == m.choice) + "\n")
		}

	case StepProviderKey:
		b.WriteString(ui.SectionHeader("API KEY", ui.ColorCyan))
		b.WriteString("\n\n")
		b.WriteString("  " + ui.Field(m.cfg.AI.Provider+" API key", masked(m.input), true) + "\n")

	case StepUsername:
		b.WriteString(ui.SectionHeader("GITHUB USERNAME", ui.ColorCyan))
		b.WriteString("\n\n")
		b.WriteString(ui.HintStyle.Render("  Used to filter commits to yours. Leave empty to keep everything.") + "\n\n")
		b.WriteString("  " + ui.Field("Username", m.input, true) + "\n")

	case StepRepos:
		b.WriteString(ui.SectionHeader("REPOSITORIES", ui.ColorCyan))
		b.WriteString("\n\n")
		b.WriteString(ui.HintStyle.Render("  owner/repo or owner/repo@branch, one at a time. Empty line finishes.") + "\n\n")
		for _, r := range m.repos {
			label := r.Name
			if r.Branch != "" {
				label += " (branch: " + r.Branch + ")"
			}
			b.WriteString("  - " + label + "\n")
		}
		b.WriteString("\n  " + ui.Field("Repository", m.input, true) + "\n")

	case StepDays:
		b.WriteString(ui.SectionHeader("LOOK-BACK WINDOW", ui.ColorCyan))
		b.WriteString("\n\n")
		b.WriteString("  " + ui.Field("Days", m.input, true) + "\n")

	case StepFormat:
		b.WriteString(ui.SectionHeader("OUTPUT FORMAT", ui.ColorCyan))
		b.WriteString("\n\n")
		for i, f := range formatChoices {
			b.WriteString("  " + ui.Choice(f, i == m.choice) + "\n")
		}

	case StepDone:
		b.WriteString("  " + ui.TitleStyle.Render("Configuration saved.") + "\n")
	}

	if m.errMessage != "" {
		b.WriteString("\n  " + ui.ErrorStyle.Render(m.errMessage) + "\n")
	}

	b.WriteString("\n" + ui.HintStyle.Render("  enter: confirm  •  esc: quit") + "\n")
	return b.String()
}

// masked hides all but the tail of a secret while typing
func masked(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return fmt.Sprintf("%s%s", strings.Repeat("*", len(s)-4), s[len(s)-4:])
}
