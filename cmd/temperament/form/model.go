// Package form is the interactive terminal questionnaire. It is a thin
// bubbletea shell over quiz.Session: every user action is forwarded to the
// session, and the view is drawn from the session's Frame.
package form

import (
	"context"
	"fmt"

	"temperament/cmd/temperament/ui"
	"temperament/internal/quiz"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Option configures a Model.
type Option func(*Model)

// WithStyles overrides the detected styles.
func WithStyles(s ui.Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithRenderer sets the markdown renderer for the results summary.
func WithRenderer(r ui.MarkdownRenderer) Option {
	return func(m *Model) { m.renderer = r }
}

// WithRendererFactory rebuilds the markdown renderer whenever the results
// width changes, so the summary wraps to the window.
func WithRendererFactory(f func(width int) (ui.MarkdownRenderer, error)) Option {
	return func(m *Model) { m.rendererFor = f }
}

// WithLogger attaches a logger for UI events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is the bubbletea model for one questionnaire run.
type Model struct {
	session *quiz.Session

	keys     keyMap
	help     help.Model
	pager    paginator.Model
	results  ui.ResultsPageModel
	styles   ui.Styles
	renderer ui.MarkdownRenderer
	logger   *zap.Logger

	rendererFor func(width int) (ui.MarkdownRenderer, error)
	wrapWidth   int

	cursor int
	width  int
	height int
	err    error
}

// New wraps session in a terminal model.
func New(session *quiz.Session, opts ...Option) Model {
	m := Model{
		session: session,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  ui.DefaultStyles(),
		logger:  zap.NewNop(),
		width:   80,
		height:  24,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.pager = paginator.New()
	m.pager.Type = paginator.Dots
	m.pager.ActiveDot = m.styles.Checked.Render("•")
	m.pager.InactiveDot = m.styles.Muted.Render("•")

	m.results = ui.NewResultsPageModel(m.styles, m.renderer)
	m.keys.setMode(session.Mode())
	return m
}

// Session exposes the underlying state manager.
func (m Model) Session() *quiz.Session {
	return m.session
}

// Cursor returns the highlighted row on the current page.
func (m Model) Cursor() int {
	return m.cursor
}

// Err returns the last error raised by a transition, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		width := max(20, msg.Width-4)
		m.resizeRenderer(width)
		m.results.SetSize(width, max(5, msg.Height-6))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.session.Mode() == quiz.ModeShowingResults {
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.logger.Debug("quit requested", zap.String("mode", m.session.Mode().String()))
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.session.Mode() == quiz.ModeShowingResults {
		if key.Matches(msg, m.keys.Restart) {
			m.session.Restart()
			m.cursor = 0
			m.err = nil
			m.keys.setMode(m.session.Mode())
			m.results.UpdateContent(nil)
			return m, nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	items := m.session.CurrentPageItems()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(items) {
			m.session.Toggle(items[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Next):
		m.next()
	case key.Matches(msg, m.keys.Previous):
		before := m.session.Page()
		m.session.PreviousPage()
		if m.session.Page() != before {
			m.cursor = 0
		}
	default:
		// 1-9 toggle the matching row, 0 the tenth
		if n, ok := digit(msg); ok && n < len(items) {
			m.cursor = n
			m.session.Toggle(items[n].ID)
		}
	}
	return m, nil
}

func (m *Model) next() {
	if err := m.session.NextPage(); err != nil {
		m.err = err
		m.logger.Error("failed to advance", zap.Error(err))
		return
	}
	m.cursor = 0
	m.logger.Debug("page changed",
		zap.Int("page", m.session.Page()),
		zap.String("mode", m.session.Mode().String()),
	)

	if m.session.Mode() == quiz.ModeShowingResults {
		m.keys.setMode(m.session.Mode())
		m.results.UpdateContent(m.session.Result())
	}
}

func (m *Model) resizeRenderer(width int) {
	if m.rendererFor == nil || width == m.wrapWidth {
		return
	}
	r, err := m.rendererFor(width)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", zap.Int("width", width), zap.Error(err))
		return
	}
	m.wrapWidth = width
	m.renderer = r
	m.results.SetRenderer(r)
}

func digit(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	switch {
	case r >= '1' && r <= '9':
		return int(r - '1'), true
	case r == '0':
		return 9, true
	}
	return 0, false
}

// Run starts the program and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model, altScreen bool) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("questionnaire UI failed: %w", err)
	}
	return nil
}
