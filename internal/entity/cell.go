package entity

import "fmt"

// Kind tags what lies under a cell.
type Kind uint8

const (
	KindNumber Kind = iota
	KindMine
)

// Cell is the immutable content of one board position.
// Adjacent is meaningful only for KindNumber cells.
type Cell struct {
	Kind     Kind
	Adjacent int
}

func MineCell() Cell {
	return Cell{Kind: KindMine}
}

func NumberCell(adjacent int) Cell {
	return Cell{Kind: KindNumber, Adjacent: adjacent}
}

func (that Cell) IsMine() bool {
	return that.Kind == KindMine
}

// CellState is the per-cell player overlay.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (that CellState) String() string {
	switch that {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(that))
	}
}

// Outcome classifies a session.
type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(that))
	}
}

// IsTerminal reports whether no further moves are accepted.
func (that Outcome) IsTerminal() bool {
	return that == Won || that == Lost
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// CellView is the read-only projection handed to presentation.
// Mine and Adjacent are set only when State is Revealed.
type CellView struct {
	State    CellState
	Mine     bool
	Adjacent int
}
