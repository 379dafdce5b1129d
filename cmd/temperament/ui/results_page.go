package ui

import (
	"fmt"
	"strings"

	"temperament/internal/scoring"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// MarkdownRenderer renders markdown for the terminal. *glamour.TermRenderer
// satisfies it.
type MarkdownRenderer interface {
	Render(string) (string, error)
}

// NewMarkdownRenderer builds a glamour renderer wrapped to width. The style
// follows the theme so headings stay readable on either background.
func NewMarkdownRenderer(theme Theme, width int) (*glamour.TermRenderer, error) {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
}

// ResultsPageModel renders a scored questionnaire: the markdown summary
// followed by one progress bar per category.
type ResultsPageModel struct {
	viewport viewport.Model
	bars     progress.Model
	renderer MarkdownRenderer
	styles   Styles
	width    int
	height   int

	result *scoring.Result
}

// NewResultsPageModel creates a results page. renderer may be nil, in which
// case the summary is shown as plain text.
func NewResultsPageModel(styles Styles, renderer MarkdownRenderer) ResultsPageModel {
	return ResultsPageModel{
		viewport: viewport.New(80, 20),
		bars:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		renderer: renderer,
		styles:   styles,
		width:    80,
		height:   20,
	}
}

// SetSize updates the size of the viewport.
func (m *ResultsPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.bars.Width = max(10, w-24)
	m.UpdateContent(m.result)
}

// Result returns the result currently displayed.
func (m ResultsPageModel) Result() *scoring.Result {
	return m.result
}

// SetRenderer swaps the markdown renderer. The next SetSize or
// UpdateContent picks it up.
func (m *ResultsPageModel) SetRenderer(r MarkdownRenderer) {
	m.renderer = r
}

// UpdateContent replaces the displayed result. Re-rendering the same result
// keeps the scroll position; a new result starts at the top.
func (m *ResultsPageModel) UpdateContent(res *scoring.Result) {
	same := res != nil && res == m.result
	offset := m.viewport.YOffset
	m.result = res
	if res == nil {
		m.viewport.SetContent(m.styles.Muted.Render("No results yet."))
		m.viewport.GotoTop()
		return
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Your Results"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderSummary(res))
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(m.width))
	sb.WriteString("\n\n")

	for _, share := range res.Shares() {
		label := lipgloss.NewStyle().Width(14).Render(m.styles.CategoryBadge(share.Category))
		pct := m.styles.Bold.Render(fmt.Sprintf("%4d%%", share.Percent))
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label, " ", m.bars.ViewAs(float64(share.Percent)/100), " ", pct))
		sb.WriteString("\n\n")
	}

	m.viewport.SetContent(sb.String())
	if same {
		m.viewport.SetYOffset(offset)
		return
	}
	m.viewport.GotoTop()
}

// ScrollOffset is the first visible line of the results body.
func (m ResultsPageModel) ScrollOffset() int {
	return m.viewport.YOffset
}

func (m ResultsPageModel) renderSummary(res *scoring.Result) string {
	return SafeRenderMarkdown(m.renderer, fmt.Sprintf("## %s\n\n%s\n", res.Headline(), res.Description))
}

// SafeRenderMarkdown renders content with r, falling back to the raw text
// when r is nil, errors or panics.
func SafeRenderMarkdown(r MarkdownRenderer, content string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			result = content
		}
	}()

	if r != nil && content != "" {
		rendered, err := r.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

// Update handles scroll keys.
func (m ResultsPageModel) Update(msg tea.Msg) (ResultsPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m ResultsPageModel) View() string {
	return m.viewport.View()
}
