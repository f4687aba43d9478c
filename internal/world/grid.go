// Package world provides the wall grid that rays are cast against and
// movement is checked against.
package world

import "fmt"

// Cell is a single grid square.
type Cell uint8

const (
	// CellOpen is walkable space rays pass through.
	CellOpen Cell = iota
	// CellWall blocks both rays and movement.
	CellWall
)

// IsOpen returns true if the cell can be walked through.
func (c Cell) IsOpen() bool {
	return c == CellOpen
}

// Grid is a fixed rectangular wall layout. The zero value is unusable;
// construct one with NewGrid.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// ArenaLayout is the built-in 10x10 arena: a solid border with a short
// interior wall run and three standalone blocks. 1 marks a wall, 0
// open floor.
var ArenaLayout = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 1, 1, 1, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1, 0, 1},
	{1, 0, 0, 1, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// NewGrid builds a Grid from a row-major layout of 0s and 1s.
func NewGrid(layout [][]int) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("grid layout must not be empty")
	}

	cols := len(layout[0])
	cells := make([][]Cell, len(layout))
	for r, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("grid row %d has %d cells, want %d", r, len(row), cols)
		}
		cells[r] = make([]Cell, cols)
		for c, v := range row {
			switch v {
			case 0:
				cells[r][c] = CellOpen
			case 1:
				cells[r][c] = CellWall
			default:
				return nil, fmt.Errorf("grid cell (%d,%d) has value %d, want 0 or 1", r, c, v)
			}
		}
	}

	return &Grid{rows: len(layout), cols: cols, cells: cells}, nil
}

// Rows returns the grid extent along the x axis.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the grid extent along the y axis.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the cell at the given indices. Anything outside the grid
// reads as a wall, so neither a ray nor the player can ever leave it.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return CellWall
	}
	return g.cells[row][col]
}

// IsWall reports whether the continuous point (x, y) lies inside a
// wall cell. Coordinates truncate toward zero; x selects the row and
// y the column.
func (g *Grid) IsWall(x, y float64) bool {
	return g.At(int(x), int(y)) == CellWall
}

// IsOpen reports whether the continuous point (x, y) is walkable.
func (g *Grid) IsOpen(x, y float64) bool {
	return !g.IsWall(x, y)
}
