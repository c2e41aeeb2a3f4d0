package summary

import "strings"

// Section heading texts recognized in provider replies, lowercase. Providers
// phrase headings inconsistently, so several synonyms are accepted.
var (
	accomplishmentHeadings = []string{
		"yesterday's accomplishments",
		"accomplishments",
		"what i did",
		"work completed",
	}
	planHeadings = []string{
		"today's plan",
		"plan",
		"next steps",
		"plan for today",
	}
)

// ParseSections splits an AI reply into accomplishment and plan statements
// using the recognized headings. A reply with no recognizable structure goes
// wholesale into accomplishments with an empty plan; degraded, not an error.
func ParseSections(reply string) (accomplishments, plan []string) {
	lines := strings.Split(reply, "\n")

	const (
		sectionNone = iota
		sectionAccomplishments
		sectionPlan
	)
	section := sectionNone
	found := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		switch headingKind(trimmed) {
		case sectionAccomplishments:
			section = sectionAccomplishments
			found = true
			continue
		case sectionPlan:
			section = sectionPlan
			found = true
			continue
		}

		switch section {
		case sectionAccomplishments:
			accomplishments = append(accomplishments, stripBullet(trimmed))
		case sectionPlan:
			plan = append(plan, stripBullet(trimmed))
		}
	}

	if !found {
		for _, line := range lines {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				accomplishments = append(accomplishments, stripBullet(trimmed))
			}
		}
		return accomplishments, nil
	}
	return accomplishments, plan
}

// headingKind classifies a line as a section heading, tolerating Markdown
// heading markers, bold markers and trailing colons.
func headingKind(line string) int {
	stripped := strings.ToLower(line)
	stripped = strings.TrimLeft(stripped, "#* ")
	stripped = strings.TrimRight(stripped, ":* ")

	for _, h := range accomplishmentHeadings {
		if stripped == h {
			return 1
		}
	}
	for _, h := range planHeadings {
		if stripped == h {
			return 2
		}
	}
	return 0
}

// stripBullet removes a leading list marker from a statement line
func stripBullet(line string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(rest)
		}
	}
	// Numbered bullets: "1. foo" / "12) foo"
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}
