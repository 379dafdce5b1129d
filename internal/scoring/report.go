package scoring

import (
	"fmt"
	"strings"
)

// Headline is the one-line verdict shown above the breakdown.
func (r *Result) Headline() string {
	if !r.Determined() {
		return "No dominant temperament: nothing was selected"
	}
	return "Your dominant temperament is: " + r.Dominant.Title()
}

// Markdown renders the result as a short markdown document: a heading, the
// description and a percentage table in canonical order.
func (r *Result) Markdown() string {
	var sb strings.Builder

	sb.WriteString("## " + r.Headline() + "\n\n")
	if r.Description != "" {
		sb.WriteString(r.Description + "\n\n")
	}

	sb.WriteString("| Temperament | Selected | Share |\n")
	sb.WriteString("|---|---:|---:|\n")
	for _, s := range r.Shares() {
		sb.WriteString(fmt.Sprintf("| %s | %d | %d%% |\n", s.Category.Title(), s.Count, s.Percent))
	}
	sb.WriteString(fmt.Sprintf("\n_%d statement(s) selected._\n", r.Total))

	return sb.String()
}

// Text renders the result as plain aligned text for non-terminal output.
func (r *Result) Text() string {
	var sb strings.Builder

	sb.WriteString(r.Headline() + "\n")
	if r.Description != "" {
		sb.WriteString(r.Description + "\n")
	}
	sb.WriteString("\n")
	for _, s := range r.Shares() {
		sb.WriteString(fmt.Sprintf("%-12s %3d%%  (%d)\n", s.Category.Title(), s.Percent, s.Count))
	}
	return sb.String()
}
