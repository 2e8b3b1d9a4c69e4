package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
	"github.com/rocketscienceinc/minesweeper-backend/internal/repository"
	"github.com/rocketscienceinc/minesweeper-backend/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newManager(t *testing.T) *usecase.GameManager {
	t.Helper()

	saveRepo, err := repository.NewFileSaveRepository(filepath.Join(t.TempDir(), "saves"))
	require.NoError(t, err)

	return usecase.NewGameManager(discardLogger(), saveRepo)
}

func TestRender(t *testing.T) {
	// Given: a 2x3 state with every kind of cell
	state := &usecase.GameState{
		Preset:         entity.Preset{Name: "custom", Rows: 2, Cols: 3, Mines: 2},
		MinesRemaining: 1,
		Elapsed:        12,
		Outcome:        entity.Lost,
		Cells: [][]entity.CellView{
			{{State: entity.Hidden}, {State: entity.Flagged}, {State: entity.Revealed, Mine: true}},
			{{State: entity.Revealed}, {State: entity.Revealed, Adjacent: 2}, {State: entity.Hidden}},
		},
	}

	// When: it is rendered
	var out bytes.Buffer
	Render(&out, state)

	// Then: the board uses one symbol per cell and ends with the status line
	expected := "" +
		"     0  1  2\n" +
		"  0  #  F  *\n" +
		"  1  .  2  #\n" +
		"Time: 12  Mines: 1  Status: lost\n"
	assert.Equal(t, expected, out.String())
}

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays, saves and loads", func(t *testing.T) {
		// Given: a scripted session
		input := strings.NewReader("flag 0 0\nsave\nquit\n")
		var out bytes.Buffer
		console := New(discardLogger(), newManager(t), input, &out)

		// When: the console runs
		err := console.Run(ctx, "beginner")
		require.NoError(t, err)

		// Then: the flag shows and a save id is printed
		assert.Contains(t, out.String(), "  0  F")
		assert.Contains(t, out.String(), "Mines: 9")

		saveID := regexp.MustCompile(`save_[0-9a-f-]+`).FindString(out.String())
		require.NotEmpty(t, saveID)

		// When: the save is loaded in the same console
		out.Reset()
		require.NoError(t, console.Execute(ctx, "load "+saveID))

		// Then: the board is back with every cell hidden
		assert.Contains(t, out.String(), "Mines: 10")
		assert.NotContains(t, out.String(), "F")
	})

	t.Run("Stops at end of input", func(t *testing.T) {
		var out bytes.Buffer
		console := New(discardLogger(), newManager(t), strings.NewReader("show\n"), &out)

		require.NoError(t, console.Run(ctx, "default"))
		assert.Contains(t, out.String(), "Status: in progress")
	})

	t.Run("Unknown start preset fails", func(t *testing.T) {
		console := New(discardLogger(), newManager(t), strings.NewReader(""), io.Discard)

		err := console.Run(ctx, "nightmare")
		require.ErrorIs(t, err, apperror.ErrUnknownPreset)
	})

	t.Run("Custom is not a start preset", func(t *testing.T) {
		console := New(discardLogger(), newManager(t), strings.NewReader(""), io.Discard)

		// When: the configured preset is "custom", which needs dimensions
		err := console.Run(ctx, entity.CustomPresetName)

		// Then: it is reported as an unknown preset
		require.ErrorIs(t, err, apperror.ErrUnknownPreset)
		assert.NotErrorIs(t, err, errUsage)
	})
}

func TestConsole_Execute(t *testing.T) {
	ctx := context.Background()

	newConsole := func(t *testing.T) (*Console, *bytes.Buffer) {
		t.Helper()

		var out bytes.Buffer
		console := New(discardLogger(), newManager(t), strings.NewReader(""), &out)
		require.NoError(t, console.Execute(ctx, "new beginner"))
		out.Reset()

		return console, &out
	}

	t.Run("Invalid custom sizes re-prompt", func(t *testing.T) {
		console, out := newConsole(t)

		err := console.Execute(ctx, "custom 3 3 9")
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)

		console.printError(err)
		assert.Equal(t, msgInvalid+"\n", out.String())
	})

	t.Run("Oversized custom boards re-prompt", func(t *testing.T) {
		console, out := newConsole(t)

		// When: the area would overflow int
		err := console.Execute(ctx, "custom 4294967297 4294967296 1")

		// Then: it is an invalid configuration, not a crash
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)

		console.printError(err)
		assert.Equal(t, msgInvalid+"\n", out.String())
	})

	t.Run("Non numeric input is reported", func(t *testing.T) {
		console, out := newConsole(t)

		err := console.Execute(ctx, "reveal a 1")
		require.ErrorIs(t, err, errNotNumeric)

		console.printError(err)
		assert.Equal(t, msgNotNumeric+"\n", out.String())
	})

	t.Run("Out of bounds is reported", func(t *testing.T) {
		console, _ := newConsole(t)

		err := console.Execute(ctx, "r 20 20")
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Custom game starts", func(t *testing.T) {
		console, out := newConsole(t)

		require.NoError(t, console.Execute(ctx, "custom 3 4 2"))
		assert.Contains(t, out.String(), "Mines: 2")
	})

	t.Run("Unknown command prints a hint", func(t *testing.T) {
		console, out := newConsole(t)

		require.NoError(t, console.Execute(ctx, "dance"))
		assert.Equal(t, msgUnknownInput+"\n", out.String())
	})

	t.Run("Moves without a game fail", func(t *testing.T) {
		console := New(discardLogger(), newManager(t), strings.NewReader(""), io.Discard)

		err := console.Execute(ctx, "reveal 0 0")
		require.ErrorIs(t, err, errNoActiveGame)
	})

	t.Run("A finished game prints its outcome once", func(t *testing.T) {
		console, out := newConsole(t)

		// The first reveal on a 2x2 board with 3 mines always ends the game.
		require.NoError(t, console.Execute(ctx, "custom 2 2 3"))
		for _, move := range []string{"r 0 0", "r 0 1", "r 1 0", "r 1 1"} {
			require.NoError(t, console.Execute(ctx, move))
		}

		messages := strings.Count(out.String(), msgLost) + strings.Count(out.String(), msgWon)
		assert.Equal(t, 1, messages)
	})

	t.Run("Deleted saves can not be loaded", func(t *testing.T) {
		console, out := newConsole(t)

		require.NoError(t, console.Execute(ctx, "save"))
		saveID := regexp.MustCompile(`save_[0-9a-f-]+`).FindString(out.String())
		require.NotEmpty(t, saveID)

		require.NoError(t, console.Execute(ctx, "delete "+saveID))
		assert.Contains(t, out.String(), "Save "+saveID+" deleted.")

		err := console.Execute(ctx, "load "+saveID)
		require.ErrorIs(t, err, apperror.ErrSaveNotFound)
	})

	t.Run("Presets are listed", func(t *testing.T) {
		console, out := newConsole(t)

		require.NoError(t, console.Execute(ctx, "presets"))
		assert.Contains(t, out.String(), "expert: 16x30 (99 mines)")
		assert.Contains(t, out.String(), "default: 10x10 (10 mines)")
	})
}
