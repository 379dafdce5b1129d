package quiz

import (
	"temperament/internal/catalog"
	"temperament/internal/scoring"
)

// Item is a statement on the active page together with its checkbox state.
type Item struct {
	catalog.Statement
	Selected bool
}

// Frame is everything a renderer needs for one draw. It is a snapshot: later
// mutations of the session do not affect it.
type Frame struct {
	Items         []Item
	PageIndex     int
	TotalPages    int
	SelectedCount int
	IsLastPage    bool
	ShowResults   bool
	Result        *scoring.Result
}

// Frame projects the session state into a renderable snapshot. While results
// are shown Items is empty and Result is set.
func (s *Session) Frame() Frame {
	f := Frame{
		PageIndex:     s.page,
		TotalPages:    s.TotalPages(),
		SelectedCount: len(s.selected),
		IsLastPage:    s.IsLastPage(),
		ShowResults:   s.mode == ModeShowingResults,
	}

	if f.ShowResults {
		f.Result = s.result.Clone()
		return f
	}

	page := s.CurrentPageItems()
	f.Items = make([]Item, len(page))
	for i, st := range page {
		f.Items[i] = Item{Statement: st, Selected: s.IsSelected(st.ID)}
	}
	return f
}
