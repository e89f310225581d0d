package world

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrEmptyMap is returned when a map file contains no cells at all.
var ErrEmptyMap = errors.New("world: map has no cells")

// Grid is the terrain of a session. Rows may be ragged; a missing cell
// behaves like open ground. A Grid is never modified after parsing.
type Grid struct {
	rows  [][]Terrain
	width int
}

// NewGrid builds a grid from rows of terrain codes. The rows are copied.
func NewGrid(rows [][]Terrain) *Grid {
	g := &Grid{rows: make([][]Terrain, len(rows))}
	for i, row := range rows {
		g.rows[i] = append([]Terrain(nil), row...)
		g.width = max(g.width, len(row))
	}
	return g
}

// ParseMap parses map text: one row per line, codes separated by whitespace.
// Blank lines produce empty rows and tokens that are not integers become
// TerrainUnknown; neither is an error. Trailing blank lines are dropped.
func ParseMap(data []byte) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]Terrain, 0, len(lines))
	cells := 0
	for _, line := range lines {
		fields := strings.Fields(line)
		row := make([]Terrain, 0, len(fields))
		for _, f := range fields {
			code, err := strconv.Atoi(f)
			if err != nil {
				row = append(row, TerrainUnknown)
				continue
			}
			row = append(row, Terrain(code))
		}
		cells += len(row)
		rows = append(rows, row)
	}

	if cells == 0 {
		return nil, ErrEmptyMap
	}
	return NewGrid(rows), nil
}

// LoadMap reads and parses a map file.
func LoadMap(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: read map %s: %w", path, err)
	}
	g, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("world: parse map %s: %w", path, err)
	}
	return g, nil
}

// Width returns the length of the longest row.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// At returns the terrain at (col, row) and whether that cell exists.
// Missing cells report TerrainOpen.
func (g *Grid) At(col, row int) (Terrain, bool) {
	if row < 0 || row >= len(g.rows) {
		return TerrainOpen, false
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return TerrainOpen, false
	}
	return r[col], true
}

// Blocking reports whether the cell at (col, row) blocks movement.
func (g *Grid) Blocking(col, row int) bool {
	t, ok := g.At(col, row)
	return ok && IsBlocking(t)
}

// Rows returns a copy of the terrain rows.
func (g *Grid) Rows() [][]Terrain {
	rows := make([][]Terrain, len(g.rows))
	for i, row := range g.rows {
		rows[i] = append([]Terrain(nil), row...)
	}
	return rows
}

// RowLen returns the number of cells present in a row.
func (g *Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Histogram counts cells per terrain code.
func (g *Grid) Histogram() map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, row := range g.rows {
		for _, t := range row {
			counts[t]++
		}
	}
	return counts
}
