// Package catalog holds the fixed, ordered list of trait statements shown by
// the questionnaire. A Catalog is built once at startup and never mutated.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPageSize is the number of statements shown per page.
const DefaultPageSize = 10

var (
	ErrEmptyCatalog     = errors.New("catalog has no statements")
	ErrDuplicateID      = errors.New("duplicate statement id")
	ErrInvalidID        = errors.New("statement id must be positive")
	ErrEmptyText        = errors.New("statement text is empty")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownStatement = errors.New("unknown statement id")
)

//go:embed data/characteristics.yaml
var defaultCatalogYAML []byte

// Statement is a single trait description a user may select.
type Statement struct {
	ID       int      `yaml:"id" json:"id"`
	Text     string   `yaml:"text" json:"text"`
	Category Category `yaml:"category" json:"category"`
}

// file is the on-disk YAML layout.
type file struct {
	Statements []Statement `yaml:"statements"`
}

// Catalog is an ordered, read-only collection of statements.
type Catalog struct {
	statements []Statement
	index      map[int]int // id -> position
}

// New validates the statements and builds a Catalog that preserves their order.
func New(statements []Statement) (*Catalog, error) {
	if len(statements) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		statements: make([]Statement, len(statements)),
		index:      make(map[int]int, len(statements)),
	}
	copy(c.statements, statements)

	for i, s := range c.statements {
		if s.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, s.ID)
		}
		if _, dup := c.index[s.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
		}
		if strings.TrimSpace(s.Text) == "" {
			return nil, fmt.Errorf("%w (id %d)", ErrEmptyText, s.ID)
		}
		if !s.Category.Valid() {
			return nil, fmt.Errorf("%w %q (id %d)", ErrUnknownCategory, s.Category, s.ID)
		}
		c.index[s.ID] = i
	}

	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Statements)
}

// Load reads a YAML catalog from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Open loads the catalog at path, or the embedded default when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Len returns the number of statements.
func (c *Catalog) Len() int {
	return len(c.statements)
}

// Statements returns a copy of all statements in catalog order.
func (c *Catalog) Statements() []Statement {
	out := make([]Statement, len(c.statements))
	copy(out, c.statements)
	return out
}

// Lookup returns the statement with the given id.
func (c *Catalog) Lookup(id int) (Statement, bool) {
	i, ok := c.index[id]
	if !ok {
		return Statement{}, false
	}
	return c.statements[i], true
}

// Contains reports whether id names a statement in the catalog.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.index[id]
	return ok
}

// TotalPages returns ceil(Len/size), never less than 1.
// A non-positive size falls back to DefaultPageSize.
func (c *Catalog) TotalPages(size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	n := (len(c.statements) + size - 1) / size
	if n < 1 {
		return 1
	}
	return n
}

// Page returns the statements on page index (0-based). Out-of-range indexes
// yield an empty slice. The last page may be shorter than size.
func (c *Catalog) Page(index, size int) []Statement {
	if size <= 0 {
		size = DefaultPageSize
	}
	start := index * size
	if index < 0 || start >= len(c.statements) {
		return []Statement{}
	}
	end := start + size
	if end > len(c.statements) {
		end = len(c.statements)
	}
	out := make([]Statement, end-start)
	copy(out, c.statements[start:end])
	return out
}
