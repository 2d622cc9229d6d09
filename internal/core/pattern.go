package core

import (
	"fmt"
	"sync"
)

// Pattern is a repeating tile of runes anchored at the screen origin.
// A space in the tile leaves the cell blank.
type Pattern struct {
	ID   string
	Tile [][]rune
}

// NewPattern creates a pattern from tile rows. Rows are padded to the
// widest row with spaces.
func NewPattern(id string, rows ...string) (*Pattern, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("pattern %q: empty tile", id)
	}
	width := 0
	tile := make([][]rune, len(rows))
	for i, row := range rows {
		tile[i] = []rune(row)
		width = Max(width, len(tile[i]))
	}
	if width == 0 {
		return nil, fmt.Errorf("pattern %q: empty tile", id)
	}
	for i := range tile {
		for len(tile[i]) < width {
			tile[i] = append(tile[i], ' ')
		}
	}
	return &Pattern{ID: id, Tile: tile}, nil
}

// At returns the tile rune for screen cell (x, y).
func (p *Pattern) At(x, y int) rune {
	row := p.Tile[mod(y, len(p.Tile))]
	return row[mod(x, len(row))]
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Patterns is a tile pattern provider keyed by resource identifier.
type Patterns struct {
	mu       sync.RWMutex
	patterns map[string]*Pattern
}

// NewPatterns creates an empty pattern provider.
func NewPatterns() *Patterns {
	return &Patterns{patterns: make(map[string]*Pattern)}
}

// Register adds or replaces a pattern under its ID.
func (ps *Patterns) Register(p *Pattern) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.patterns[p.ID] = p
}

// Pattern returns the pattern registered under id.
func (ps *Patterns) Pattern(id string) (*Pattern, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	p, ok := ps.patterns[id]
	return p, ok
}
