// Package savefile reads and writes the line-oriented save format:
//
//	rows cols mineCount
//	elapsedTime
//	rows lines of cols integers, -1 for a mine and 0..8 otherwise
//
// Only the layout and the clock are kept; a loaded session starts with every cell hidden.
package savefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
)

const (
	mineValue = -1

	maxPrealloc   = 1 << 16
	maxLineLength = 1 << 20
)

var errUnexpectedEOF = errors.New("unexpected end of file")

// Encode - writes the session's layout and elapsed time.
func Encode(w io.Writer, session *entity.Session) error {
	board := session.Board()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d %d\n", board.Rows(), board.Cols(), board.MineCount())
	fmt.Fprintf(bw, "%d\n", session.ElapsedTime())

	for row := range board.Rows() {
		for col := range board.Cols() {
			cell, err := board.Cell(row, col)
			if err != nil {
				return fmt.Errorf("failed to read cell: %w", err)
			}

			value := cell.Adjacent
			if cell.IsMine() {
				value = mineValue
			}

			bw.WriteString(strconv.Itoa(value))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}

	return nil
}

// Marshal - Encode into a string.
func Marshal(session *entity.Session) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, session); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Decode - parses a save and restores a session over the recorded layout.
// Every structural problem, including a mine count that disagrees with the header,
// is reported as apperror.ErrCorruptSaveData.
func Decode(r io.Reader) (*entity.Session, error) {
	session, err := decode(r)
	if err != nil {
		if errors.Is(err, apperror.ErrCorruptSaveData) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", apperror.ErrCorruptSaveData, err)
	}

	return session, nil
}

// Unmarshal - Decode from a string.
func Unmarshal(data string) (*entity.Session, error) {
	return Decode(strings.NewReader(data))
}

func decode(r io.Reader) (*entity.Session, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	lines := &lineReader{scanner: scanner}

	header, err := lines.ints(3)
	if err != nil {
		return nil, err
	}
	rows, cols, mineCount := header[0], header[1], header[2]

	if err = entity.ValidateConfiguration(rows, cols, mineCount); err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}

	elapsed, err := lines.ints(1)
	if err != nil {
		return nil, err
	}

	mask := make([]bool, 0, min(rows*cols, maxPrealloc))
	for range rows {
		values, err := lines.ints(cols)
		if err != nil {
			return nil, err
		}

		for col, value := range values {
			if value != mineValue && (value < 0 || value > 8) {
				return nil, fmt.Errorf("line %d col %d: cell value %d out of range", lines.number, col, value)
			}

			mask = append(mask, value == mineValue)
		}
	}

	if err = lines.rest(); err != nil {
		return nil, err
	}

	board, err := entity.LoadBoard(rows, cols, mineCount, mask)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	session, err := entity.RestoreSession(board, elapsed[0])
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	return session, nil
}

type lineReader struct {
	scanner *bufio.Scanner
	number  int
}

// ints - reads the next line as exactly n space-separated integers.
func (that *lineReader) ints(n int) ([]int, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read save: %w", err)
		}

		return nil, fmt.Errorf("line %d: %w", that.number+1, errUnexpectedEOF)
	}
	that.number++

	fields := strings.Fields(that.scanner.Text())
	if len(fields) != n {
		return nil, fmt.Errorf("line %d: got %d values, want %d", that.number, len(fields), n)
	}

	values := make([]int, n)
	for i, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", that.number, err)
		}
		values[i] = value
	}

	return values, nil
}

// rest - only blank lines may follow the grid.
func (that *lineReader) rest() error {
	for that.scanner.Scan() {
		that.number++
		if strings.TrimSpace(that.scanner.Text()) != "" {
			return fmt.Errorf("line %d: unexpected data after grid", that.number)
		}
	}

	if err := that.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read save: %w", err)
	}

	return nil
}
