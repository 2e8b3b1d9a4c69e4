package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
	"github.com/rocketscienceinc/minesweeper-backend/internal/usecase"
)

func (that *Console) render(state *usecase.GameState) {
	Render(that.out, state)
}

// Render - prints the board with row and column numbers, then a status line.
//
//	# hidden, F flag, * mine, . empty, 1-8 mine count
func Render(w io.Writer, state *usecase.GameState) {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := range state.Preset.Cols {
		fmt.Fprintf(&sb, "%3d", col)
	}
	sb.WriteByte('\n')

	for row, cells := range state.Cells {
		fmt.Fprintf(&sb, "%3d", row)
		for _, view := range cells {
			fmt.Fprintf(&sb, "%3s", symbol(view))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "Time: %d  Mines: %d  Status: %s\n", state.Elapsed, state.MinesRemaining, state.Outcome)

	_, _ = io.WriteString(w, sb.String())
}

func symbol(view entity.CellView) string {
	switch view.State {
	case entity.Flagged:
		return "F"
	case entity.Revealed:
		if view.Mine {
			return "*"
		}
		if view.Adjacent == 0 {
			return "."
		}
		return strconv.Itoa(view.Adjacent)
	default:
		return "#"
	}
}
