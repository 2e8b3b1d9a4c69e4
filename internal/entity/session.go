package entity

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
)

// Session is one game: a board plus the player's overlay, the clock and the outcome.
// A Session is not safe for concurrent use; callers serialize access.
type Session struct {
	board   *Board
	states  []CellState
	elapsed int
	outcome Outcome

	revealedSafe int
	flags        int
}

// NewGame - starts a session on a freshly randomized board.
func NewGame(rows, cols, mineCount int) (*Session, error) {
	return NewSession(rows, cols, mineCount, NewRand(time.Now().UnixNano()))
}

// NewRand - deterministic PCG source for a seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1)) //nolint: gosec // game randomness
}

func NewSession(rows, cols, mineCount int, rng *rand.Rand) (*Session, error) {
	board, err := NewBoard(rows, cols, mineCount, rng)
	if err != nil {
		return nil, err
	}

	return newSession(board, 0), nil
}

// RestoreSession - resumes a persisted board with a fresh all-hidden overlay.
func RestoreSession(board *Board, elapsed int) (*Session, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: missing board", apperror.ErrCorruptSaveData)
	}

	if elapsed < 0 {
		return nil, fmt.Errorf("%w: negative elapsed time %d", apperror.ErrCorruptSaveData, elapsed)
	}

	return newSession(board, elapsed), nil
}

func newSession(board *Board, elapsed int) *Session {
	return &Session{
		board:   board,
		states:  make([]CellState, board.Size()),
		elapsed: elapsed,
		outcome: InProgress,
	}
}

func (that *Session) Board() *Board {
	return that.board
}

func (that *Session) Outcome() Outcome {
	return that.outcome
}

func (that *Session) IsFinished() bool {
	return that.outcome.IsTerminal()
}

func (that *Session) ElapsedTime() int {
	return that.elapsed
}

func (that *Session) FlagCount() int {
	return that.flags
}

// MinesRemaining - mines minus flags; goes negative when the player over-flags.
func (that *Session) MinesRemaining() int {
	return that.board.MineCount() - that.flags
}

// Reveal - opens (row, col) and cascades through zero cells.
// Returns the cells whose state changed; nil when the call was a no-op.
func (that *Session) Reveal(row, col int) ([]Coord, error) {
	if err := that.board.checkBounds(row, col); err != nil {
		return nil, err
	}

	if that.IsFinished() {
		return nil, nil
	}

	idx := that.board.index(row, col)
	if that.states[idx] != Hidden {
		return nil, nil
	}

	if that.board.cells[idx].IsMine() {
		that.states[idx] = Revealed
		that.outcome = Lost

		return []Coord{{Row: row, Col: col}}, nil
	}

	region := that.board.FloodRegion(Coord{Row: row, Col: col}, func(c Coord) bool {
		return that.states[that.board.index(c.Row, c.Col)] == Hidden
	})

	for _, c := range region {
		that.states[that.board.index(c.Row, c.Col)] = Revealed
	}
	that.revealedSafe += len(region)

	that.checkWin()

	return region, nil
}

// checkWin - every non-mine cell revealed. Flags never count.
func (that *Session) checkWin() {
	if that.revealedSafe == that.board.Size()-that.board.MineCount() {
		that.outcome = Won
	}
}

// ToggleFlag - flips Hidden and Flagged. Reports whether anything changed.
func (that *Session) ToggleFlag(row, col int) (bool, error) {
	if err := that.board.checkBounds(row, col); err != nil {
		return false, err
	}

	if that.IsFinished() {
		return false, nil
	}

	idx := that.board.index(row, col)
	switch that.states[idx] {
	case Hidden:
		that.states[idx] = Flagged
		that.flags++
	case Flagged:
		that.states[idx] = Hidden
		that.flags--
	default:
		return false, nil
	}

	return true, nil
}

// Tick - advances the clock by one second while the game is running.
func (that *Session) Tick() {
	if that.IsFinished() {
		return
	}

	that.elapsed++
}

// CellState - the raw overlay state, without the end-of-game mine exposure applied by CellView.
func (that *Session) CellState(row, col int) (CellState, error) {
	if err := that.board.checkBounds(row, col); err != nil {
		return Hidden, err
	}

	return that.states[that.board.index(row, col)], nil
}

// CellView - what presentation may show at (row, col). Once the game is over every mine
// is reported as revealed, leaving the overlay itself untouched.
func (that *Session) CellView(row, col int) (CellView, error) {
	if err := that.board.checkBounds(row, col); err != nil {
		return CellView{}, err
	}

	idx := that.board.index(row, col)
	cell := that.board.cells[idx]
	state := that.states[idx]

	if cell.IsMine() && that.IsFinished() {
		state = Revealed
	}

	if state != Revealed {
		return CellView{State: state}, nil
	}

	return CellView{
		State:    Revealed,
		Mine:     cell.IsMine(),
		Adjacent: cell.Adjacent,
	}, nil
}

// Views - CellView for the whole grid, indexed [row][col].
func (that *Session) Views() [][]CellView {
	views := make([][]CellView, that.board.Rows())
	for row := range views {
		views[row] = make([]CellView, that.board.Cols())
		for col := range views[row] {
			// coordinates are in range by construction
			views[row][col], _ = that.CellView(row, col)
		}
	}

	return views
}
