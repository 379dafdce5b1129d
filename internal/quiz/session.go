// Package quiz owns the state of one questionnaire run: which statements are
// selected, which page is shown, and whether results are being displayed.
//
// A Session is not safe for concurrent use. It is meant to be driven by a
// single event loop (the TUI update loop), which serialises all input.
package quiz

import (
	"fmt"
	"sort"

	"temperament/internal/catalog"
	"temperament/internal/scoring"

	"go.uber.org/zap"
)

// Mode is the view mode of a session.
type Mode int

const (
	ModeAnswering Mode = iota
	ModeShowingResults
)

func (m Mode) String() string {
	switch m {
	case ModeAnswering:
		return "answering"
	case ModeShowingResults:
		return "showing_results"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPageSize overrides catalog.DefaultPageSize. Non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithLogger attaches a logger for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session is the selection state manager.
type Session struct {
	catalog  *catalog.Catalog
	pageSize int
	logger   *zap.Logger

	selected map[int]struct{}
	page     int
	mode     Mode
	result   *scoring.Result
}

// NewSession starts a fresh run over cat: page 0, answering, nothing selected.
func NewSession(cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:  cat,
		pageSize: catalog.DefaultPageSize,
		logger:   zap.NewNop(),
		selected: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Toggle flips membership of id and reports whether it is selected afterwards.
// Ids that are not in the catalog are ignored, as is any toggle while results
// are shown.
func (s *Session) Toggle(id int) bool {
	if s.mode != ModeAnswering {
		return s.IsSelected(id)
	}
	if !s.catalog.Contains(id) {
		s.logger.Debug("ignoring toggle of unknown statement", zap.Int("id", id))
		return false
	}

	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false
	}
	s.selected[id] = struct{}{}
	return true
}

// IsSelected reports whether id is in the selection set.
func (s *Session) IsSelected(id int) bool {
	_, ok := s.selected[id]
	return ok
}

// NextPage advances one page. On the last page it switches to
// ModeShowingResults and scores the selection. Inert once results are shown.
func (s *Session) NextPage() error {
	if s.mode != ModeAnswering {
		return nil
	}

	last := s.TotalPages() - 1
	if s.page < last {
		s.page++
		return nil
	}

	res, err := scoring.Compute(s.catalog, s.Selected())
	if err != nil {
		return fmt.Errorf("failed to score selection: %w", err)
	}
	s.result = res
	s.mode = ModeShowingResults

	s.logger.Info("questionnaire completed",
		zap.Int("selected", res.Total),
		zap.String("dominant", string(res.Dominant)),
	)
	return nil
}

// PreviousPage moves back one page, stopping at 0. Inert once results are shown.
func (s *Session) PreviousPage() {
	if s.mode != ModeAnswering {
		return
	}
	if s.page > 0 {
		s.page--
	}
}

// Restart discards all state and begins again from the first page.
func (s *Session) Restart() {
	s.selected = make(map[int]struct{})
	s.page = 0
	s.mode = ModeAnswering
	s.result = nil
	s.logger.Debug("questionnaire restarted")
}

// CurrentPageItems returns the statements on the active page.
func (s *Session) CurrentPageItems() []catalog.Statement {
	return s.catalog.Page(s.page, s.pageSize)
}

// Page returns the 0-based index of the active page.
func (s *Session) Page() int {
	return s.page
}

// TotalPages returns the number of pages in the questionnaire.
func (s *Session) TotalPages() int {
	return s.catalog.TotalPages(s.pageSize)
}

// PageSize returns the number of statements per page.
func (s *Session) PageSize() int {
	return s.pageSize
}

// IsLastPage reports whether the active page is the final one.
func (s *Session) IsLastPage() bool {
	return s.page == s.TotalPages()-1
}

// Mode returns the current view mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Selected returns the selected ids in ascending order.
func (s *Session) Selected() []int {
	out := make([]int, 0, len(s.selected))
	for id := range s.selected {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// SelectedCount returns the size of the selection set.
func (s *Session) SelectedCount() int {
	return len(s.selected)
}

// Result returns the score computed when results were entered, or nil while
// answering.
func (s *Session) Result() *scoring.Result {
	return s.result
}

// Catalog returns the catalog the session runs over.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}
