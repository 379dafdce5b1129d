// Package scoring turns a set of selected statements into a temperament
// result. It has no state and no side effects.
package scoring

import (
	"fmt"
	"math"

	"temperament/internal/catalog"
)

var descriptions = map[catalog.Category]string{
	catalog.Choleric:    "Natural leader, determined and goal-oriented.",
	catalog.Sanguine:    "Outgoing, enthusiastic and communicative.",
	catalog.Melancholic: "Perfectionist, detail-oriented and deep.",
	catalog.Phlegmatic:  "Peaceful, balanced and diplomatic.",
}

// Description returns the one-sentence summary for c, or "" for anything
// outside the four known categories.
func Description(c catalog.Category) string {
	return descriptions[c]
}

// Tally counts selected statements per category. All four categories are
// always present.
type Tally map[catalog.Category]int

// Total is the sum over all categories.
func (t Tally) Total() int {
	n := 0
	for _, v := range t {
		n += v
	}
	return n
}

// Share is one row of the breakdown, in canonical category order.
type Share struct {
	Category catalog.Category `json:"category" yaml:"category"`
	Count    int              `json:"count" yaml:"count"`
	Percent  int              `json:"percent" yaml:"percent"`
}

// Result is the outcome of scoring one selection.
type Result struct {
	Total       int                      `json:"total" yaml:"total"`
	Tally       Tally                    `json:"tally" yaml:"tally"`
	Percentages map[catalog.Category]int `json:"percentages" yaml:"percentages"`
	Dominant    catalog.Category         `json:"dominant" yaml:"dominant"`
	Description string                   `json:"description" yaml:"description"`
}

// Clone returns a deep copy of r. A nil Result clones to nil.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.Tally = make(Tally, len(r.Tally))
	for c, n := range r.Tally {
		out.Tally[c] = n
	}
	out.Percentages = make(map[catalog.Category]int, len(r.Percentages))
	for c, p := range r.Percentages {
		out.Percentages[c] = p
	}
	return &out
}

// Determined is false when nothing was selected.
func (r *Result) Determined() bool {
	return r.Dominant != catalog.Undetermined
}

// Shares returns the breakdown in canonical category order.
func (r *Result) Shares() []Share {
	out := make([]Share, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		out = append(out, Share{Category: c, Count: r.Tally[c], Percent: r.Percentages[c]})
	}
	return out
}

// Compute scores the selected statement ids against cat. selected is treated
// as a set: a repeated id counts once. An id missing from cat fails with
// catalog.ErrUnknownStatement rather than being skipped.
func Compute(cat *catalog.Catalog, selected []int) (*Result, error) {
	tally := make(Tally, len(catalog.Categories))
	for _, c := range catalog.Categories {
		tally[c] = 0
	}

	seen := make(map[int]struct{}, len(selected))
	for _, id := range selected {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		s, ok := cat.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %d", catalog.ErrUnknownStatement, id)
		}
		tally[s.Category]++
	}

	total := len(seen)
	dominant := Dominant(tally)

	return &Result{
		Total:       total,
		Tally:       tally,
		Percentages: percentages(tally, total),
		Dominant:    dominant,
		Description: Description(dominant),
	}, nil
}

// Dominant returns the category with the highest count. Ties go to the
// category that comes first in catalog.Categories. An all-zero tally is
// Undetermined.
func Dominant(t Tally) catalog.Category {
	best := catalog.Undetermined
	top := 0
	for _, c := range catalog.Categories {
		if t[c] > top {
			best, top = c, t[c]
		}
	}
	return best
}

func percentages(t Tally, total int) map[catalog.Category]int {
	out := make(map[catalog.Category]int, len(catalog.Categories))
	for _, c := range catalog.Categories {
		if total == 0 {
			out[c] = 0
			continue
		}
		out[c] = int(math.Round(float64(t[c]) / float64(total) * 100))
	}
	return out
}
