package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is one of the four fixed temperaments a statement belongs to.
type Category string

const (
	Choleric    Category = "choleric"
	Sanguine    Category = "sanguine"
	Melancholic Category = "melancholic"
	Phlegmatic  Category = "phlegmatic"

	// Undetermined is reported as the dominant category when nothing was selected.
	Undetermined Category = ""
)

// Categories lists every category in canonical order. Scoring ties are
// resolved by position in this slice.
var Categories = []Category{Choleric, Sanguine, Melancholic, Phlegmatic}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the capitalised display name ("Choleric").
// Undetermined renders as "Undetermined".
func (c Category) Title() string {
	if c == Undetermined {
		return "Undetermined"
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory accepts a category name in any case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return Undetermined, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// UnmarshalYAML lets catalog files spell categories in any case. An empty
// value decodes to Undetermined so a scored result reads back.
func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if strings.TrimSpace(raw) == "" {
		*c = Undetermined
		return nil
	}
	parsed, err := ParseCategory(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}
