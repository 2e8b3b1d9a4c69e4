package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
)

// Board holds the immutable mine layout and adjacency counts, row-major.
type Board struct {
	rows      int
	cols      int
	mineCount int
	cells     []Cell
}

// NewBoard - places mineCount mines uniformly at random and computes adjacency counts.
func NewBoard(rows, cols, mineCount int, rng *rand.Rand) (*Board, error) {
	if err := ValidateConfiguration(rows, cols, mineCount); err != nil {
		return nil, err
	}

	board := newEmptyBoard(rows, cols, mineCount)
	board.placeMines(rng)
	board.calculateAdjacent()

	return board, nil
}

// LoadBoard - rebuilds a board from a persisted mine mask without re-randomizing.
// Adjacency counts are always recomputed from the mask.
func LoadBoard(rows, cols, mineCount int, mineMask []bool) (*Board, error) {
	if err := ValidateConfiguration(rows, cols, mineCount); err != nil {
		return nil, err
	}

	if len(mineMask) != rows*cols {
		return nil, fmt.Errorf("%w: mask has %d cells, want %d", apperror.ErrCorruptSaveData, len(mineMask), rows*cols)
	}

	board := newEmptyBoard(rows, cols, mineCount)

	mines := 0
	for i, isMine := range mineMask {
		if isMine {
			board.cells[i] = MineCell()
			mines++
		}
	}

	if mines != mineCount {
		return nil, fmt.Errorf("%w: mask has %d mines, header says %d", apperror.ErrCorruptSaveData, mines, mineCount)
	}

	board.calculateAdjacent()

	return board, nil
}

// MaxCells caps the board area so a board always fits in memory.
const MaxCells = 1 << 22

// ValidateConfiguration - checks rows, cols > 0, rows*cols <= MaxCells and 0 < mineCount < rows*cols.
func ValidateConfiguration(rows, cols, mineCount int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", apperror.ErrInvalidConfiguration, rows, cols)
	}

	// Dividing first keeps rows*cols from overflowing.
	if rows > MaxCells/cols {
		return fmt.Errorf("%w: dimensions %dx%d exceed %d cells", apperror.ErrInvalidConfiguration, rows, cols, MaxCells)
	}

	if mineCount <= 0 || mineCount >= rows*cols {
		return fmt.Errorf("%w: %d mines on a %dx%d board", apperror.ErrInvalidConfiguration, mineCount, rows, cols)
	}

	return nil
}

func newEmptyBoard(rows, cols, mineCount int) *Board {
	return &Board{
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		cells:     make([]Cell, rows*cols),
	}
}

// placeMines draws mineCount distinct indexes by swap-removing from the candidate list,
// so the cost stays linear in the board area whatever the density.
func (that *Board) placeMines(rng *rand.Rand) {
	candidates := make([]int, len(that.cells))
	for i := range candidates {
		candidates[i] = i
	}

	left := len(candidates)
	for range that.mineCount {
		i := rng.IntN(left)
		that.cells[candidates[i]] = MineCell()
		left--
		candidates[i] = candidates[left]
	}
}

func (that *Board) calculateAdjacent() {
	for row := range that.rows {
		for col := range that.cols {
			idx := that.index(row, col)
			if that.cells[idx].IsMine() {
				continue
			}

			count := 0
			for _, n := range that.Neighbors(Coord{Row: row, Col: col}) {
				if that.cells[that.index(n.Row, n.Col)].IsMine() {
					count++
				}
			}

			that.cells[idx] = NumberCell(count)
		}
	}
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Cols() int {
	return that.cols
}

func (that *Board) MineCount() int {
	return that.mineCount
}

// Size - total number of cells.
func (that *Board) Size() int {
	return len(that.cells)
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.rows && col >= 0 && col < that.cols
}

func (that *Board) checkBounds(row, col int) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", apperror.ErrOutOfBounds, row, col, that.rows, that.cols)
	}

	return nil
}

func (that *Board) index(row, col int) int {
	return row*that.cols + col
}

// Cell - returns the content at (row, col).
func (that *Board) Cell(row, col int) (Cell, error) {
	if err := that.checkBounds(row, col); err != nil {
		return Cell{}, err
	}

	return that.cells[that.index(row, col)], nil
}

func (that *Board) IsMine(row, col int) (bool, error) {
	cell, err := that.Cell(row, col)
	if err != nil {
		return false, err
	}

	return cell.IsMine(), nil
}

// AdjacentCount - number of mines around (row, col). Mine cells report 0;
// use IsMine to tell them apart.
func (that *Board) AdjacentCount(row, col int) (int, error) {
	cell, err := that.Cell(row, col)
	if err != nil {
		return 0, err
	}

	return cell.Adjacent, nil
}

// Mines - coordinates of every mine in row-major order.
func (that *Board) Mines() []Coord {
	mines := make([]Coord, 0, that.mineCount)
	for i, cell := range that.cells {
		if cell.IsMine() {
			mines = append(mines, Coord{Row: i / that.cols, Col: i % that.cols})
		}
	}

	return mines
}

// MineMask - row-major mine layout, suitable for LoadBoard.
func (that *Board) MineMask() []bool {
	mask := make([]bool, len(that.cells))
	for i, cell := range that.cells {
		mask[i] = cell.IsMine()
	}

	return mask
}

// Neighbors - the up to 8 cells around c, clipped at the edges.
func (that *Board) Neighbors(c Coord) []Coord {
	neighbors := make([]Coord, 0, 8)

	for row := max(0, c.Row-1); row <= min(c.Row+1, that.rows-1); row++ {
		for col := max(0, c.Col-1); col <= min(c.Col+1, that.cols-1); col++ {
			if row == c.Row && col == c.Col {
				continue
			}
			neighbors = append(neighbors, Coord{Row: row, Col: col})
		}
	}

	return neighbors
}

// FloodRegion - cells opened by revealing start: start itself, every zero cell connected to it
// through zero cells, and the numbered border of that region. canOpen filters cells that must
// stay closed (flags, already revealed); a nil canOpen opens everything. Mines never cascade.
func (that *Board) FloodRegion(start Coord, canOpen func(Coord) bool) []Coord {
	if !that.InBounds(start.Row, start.Col) {
		return nil
	}

	if canOpen == nil {
		canOpen = func(Coord) bool { return true }
	}

	if !canOpen(start) {
		return nil
	}

	visited := make([]bool, len(that.cells))
	visited[that.index(start.Row, start.Col)] = true

	region := []Coord{start}
	stack := []Coord{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := that.cells[that.index(current.Row, current.Col)]
		if cell.IsMine() || cell.Adjacent != 0 {
			continue
		}

		for _, n := range that.Neighbors(current) {
			idx := that.index(n.Row, n.Col)
			if visited[idx] || !canOpen(n) {
				continue
			}

			visited[idx] = true
			region = append(region, n)
			stack = append(stack, n)
		}
	}

	return region
}
