// Package render serializes a standup summary into the supported output
// formats. Both renderers are pure functions of the summary.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wahlandcase/standup/internal/models"
)

// Format selects an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("render: unknown format %q, expected text or json", s)
	}
}

// Ext returns the file extension for saved reports
func (f Format) Ext() string {
	if f == FormatJSON {
		return "json"
	}
	return "txt"
}

// Render serializes the summary in the requested format
func Render(summary models.StandupSummary, format Format) (string, error) {
	if format == FormatJSON {
		return JSON(summary)
	}
	return Text(summary), nil
}

const delimiter = "----------------------------------------"

// Text renders the human-readable report: narrative sections first, then the
// full commit listing grouped by repository in aggregation order.
func Text(summary models.StandupSummary) string {
	var b strings.Builder

	b.WriteString("# Daily Standup\n\n")

	b.WriteString("Yesterday's Accomplishments:\n")
	for _, line := range summary.Accomplishments {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("\nToday's Plan:\n")
	for _, line := range summary.Plan {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\n" + delimiter + "\n")
	b.WriteString("COMMIT DETAILS:\n")
	b.WriteString(delimiter + "\n\n")

	for _, repo := range summary.Activity.Repos {
		fmt.Fprintf(&b, "Repository: %s\n", repo)
		for _, c := range summary.Activity.ByRepo[repo] {
			if c.Branch != "" {
				fmt.Fprintf(&b, "  [%s] %s (sha: %s)\n", c.Branch, c.Summary(), c.ShortSHA())
			} else {
				fmt.Fprintf(&b, "  %s (sha: %s)\n", c.Summary(), c.ShortSHA())
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// JSON renders the summary as indented JSON with every field present
func JSON(summary models.StandupSummary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render: marshal summary: %w", err)
	}
	return string(data), nil
}

// ParseJSON is the inverse of JSON, used for round-trip consumers
func ParseJSON(data string) (models.StandupSummary, error) {
	var summary models.StandupSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return models.StandupSummary{}, fmt.Errorf("render: parse summary: %w", err)
	}
	return summary, nil
}
