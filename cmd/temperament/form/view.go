package form

import (
	"fmt"
	"strings"

	"temperament/internal/quiz"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	frame := m.session.Frame()

	var body string
	if frame.ShowResults {
		body = m.renderResults()
	} else {
		body = m.renderPage(frame)
	}

	var sb strings.Builder
	sb.WriteString(body)
	if m.err != nil {
		sb.WriteString("\n" + m.styles.Error.Render("Error: "+m.err.Error()))
	}
	sb.WriteString("\n" + m.styles.Footer.Render(m.help.View(m.keys)))
	return sb.String()
}

func (m Model) renderPage(frame quiz.Frame) string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Temperament Test"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Select the statements that best describe you:"))
	sb.WriteString("\n\n")

	for i, item := range frame.Items {
		pointer := "  "
		if i == m.cursor {
			pointer = m.styles.Cursor.Render("› ")
		}

		box := m.styles.Unchecked.Render("[ ]")
		if item.Selected {
			box = m.styles.Checked.Render("[x]")
		}

		text := m.styles.SelectedLine.Render(item.Text)
		if i == m.cursor {
			text = m.styles.FocusedLine.Render(item.Text)
		}

		sb.WriteString(fmt.Sprintf("%s%s %s\n", pointer, box, text))
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderNav(frame))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d selected", frame.SelectedCount)))
	return m.styles.Card.Render(sb.String())
}

func (m Model) renderNav(frame quiz.Frame) string {
	prev := m.styles.Button.Render("← Previous")
	if frame.PageIndex == 0 {
		prev = m.styles.DisabledBtn.Render("← Previous")
	}

	next := m.styles.PrimaryButton.Render("Next →")
	if frame.IsLastPage {
		next = m.styles.PrimaryButton.Render("See results")
	}

	m.pager.TotalPages = frame.TotalPages
	m.pager.Page = frame.PageIndex
	status := fmt.Sprintf("Page %d of %d  %s", frame.PageIndex+1, frame.TotalPages, m.pager.View())

	return lipgloss.JoinHorizontal(lipgloss.Center, prev, "  ", m.styles.Body.Render(status), "  ", next)
}

func (m Model) renderResults() string {
	restart := m.styles.PrimaryButton.Render("[r] Take the test again")
	return m.results.View() + "\n" + restart
}
