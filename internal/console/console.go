// Package console is a line-oriented terminal front end. It reads commands, drives a
// game manager and prints the board after each move.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
	"github.com/rocketscienceinc/minesweeper-backend/internal/usecase"
)

const (
	msgLost         = "You hit a mine! You lost the game."
	msgWon          = "Congratulations! You found all the mines."
	msgInvalid      = "Invalid input. Please try again."
	msgNotNumeric   = "Invalid input. Please enter numeric values."
	msgNoGame       = "No game in progress. Use \"new\" or \"load\"."
	msgUnknownInput = "Unknown command. Type \"help\" for the list of commands."
)

var (
	errQuit         = errors.New("quit")
	errUsage        = errors.New("wrong number of arguments")
	errNotNumeric   = errors.New("not a number")
	errNoActiveGame = errors.New("no active game")
)

type gameManager interface {
	StartGame(ctx context.Context, presetName string) (*usecase.GameState, error)
	StartCustomGame(ctx context.Context, rows, cols, mines int) (*usecase.GameState, error)
	Restart(ctx context.Context, id string) (*usecase.GameState, error)

	Reveal(ctx context.Context, id string, row, col int) (*usecase.GameState, error)
	ToggleFlag(ctx context.Context, id string, row, col int) (*usecase.GameState, error)
	State(ctx context.Context, id string) (*usecase.GameState, error)

	Save(ctx context.Context, id string) (string, error)
	Load(ctx context.Context, saveID string) (*usecase.GameState, error)
	DeleteSave(ctx context.Context, saveID string) error
	Close(ctx context.Context, id string) error
}

type handler func(ctx context.Context, args []string) error

type Console struct {
	logger  *slog.Logger
	manager gameManager

	in  io.Reader
	out io.Writer

	gameID   string
	handlers map[string]handler
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Console {
	console := &Console{
		logger:  logger.With("component", "console"),
		manager: manager,
		in:      in,
		out:     out,
	}

	console.handlers = map[string]handler{
		"new":     console.handleNew,
		"custom":  console.handleCustom,
		"restart": console.handleRestart,
		"reveal":  console.handleReveal,
		"r":       console.handleReveal,
		"flag":    console.handleFlag,
		"f":       console.handleFlag,
		"save":    console.handleSave,
		"load":    console.handleLoad,
		"delete":  console.handleDelete,
		"show":    console.handleShow,
		"presets": console.handlePresets,
		"help":    console.handleHelp,
		"quit":    console.handleQuit,
		"exit":    console.handleQuit,
	}

	return console
}

// Run - starts a game from presetName and processes commands until quit, EOF or ctx is done.
func (that *Console) Run(ctx context.Context, presetName string) error {
	if err := that.handleNew(ctx, []string{presetName}); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	scanner := bufio.NewScanner(that.in)
	for {
		fmt.Fprint(that.out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		if ctx.Err() != nil {
			return nil
		}

		if err := that.Execute(ctx, scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			that.printError(err)
		}
	}
}

// Execute - runs one command line.
func (that *Console) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	handle, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		fmt.Fprintln(that.out, msgUnknownInput)
		return nil
	}

	return handle(ctx, fields[1:])
}

func (that *Console) printError(err error) {
	log := that.logger.With("method", "printError")

	switch {
	case errors.Is(err, errNotNumeric):
		fmt.Fprintln(that.out, msgNotNumeric)
	case errors.Is(err, apperror.ErrInvalidConfiguration):
		fmt.Fprintln(that.out, msgInvalid)
	case errors.Is(err, errNoActiveGame):
		fmt.Fprintln(that.out, msgNoGame)
	case errors.Is(err, errUsage):
		fmt.Fprintln(that.out, err.Error())
	case errors.Is(err, apperror.ErrOutOfBounds),
		errors.Is(err, apperror.ErrUnknownPreset),
		errors.Is(err, apperror.ErrSaveNotFound),
		errors.Is(err, apperror.ErrCorruptSaveData):
		fmt.Fprintln(that.out, "Error:", err.Error())
	default:
		log.Error("command failed", "error", err)
		fmt.Fprintln(that.out, "Error:", err.Error())
	}
}

func (that *Console) handleNew(ctx context.Context, args []string) error {
	name := entity.DefaultPreset.Name
	if len(args) > 1 {
		return fmt.Errorf("%w: usage: new [preset]", errUsage)
	}
	if len(args) == 1 {
		name = args[0]
	}

	state, err := that.manager.StartGame(ctx, name)
	if err != nil {
		return err
	}

	that.switchGame(ctx, state)

	return nil
}

func (that *Console) handleCustom(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: custom <rows> <cols> <mines>", errUsage)
	}

	values, err := parseInts(args)
	if err != nil {
		return err
	}

	state, err := that.manager.StartCustomGame(ctx, values[0], values[1], values[2])
	if err != nil {
		return err
	}

	that.switchGame(ctx, state)

	return nil
}

func (that *Console) switchGame(ctx context.Context, state *usecase.GameState) {
	if that.gameID != "" && that.gameID != state.ID {
		if err := that.manager.Close(ctx, that.gameID); err != nil {
			that.logger.Warn("failed to close previous game", "game_id", that.gameID, "error", err)
		}
	}

	that.gameID = state.ID
	that.render(state)
}

func (that *Console) handleRestart(ctx context.Context, _ []string) error {
	if that.gameID == "" {
		return errNoActiveGame
	}

	state, err := that.manager.Restart(ctx, that.gameID)
	if err != nil {
		return err
	}

	that.render(state)

	return nil
}

func (that *Console) handleReveal(ctx context.Context, args []string) error {
	row, col, err := that.coords("reveal", args)
	if err != nil {
		return err
	}

	state, err := that.manager.Reveal(ctx, that.gameID, row, col)
	if err != nil {
		return err
	}

	that.render(state)

	if len(state.Changed) > 0 {
		switch state.Outcome {
		case entity.Lost:
			fmt.Fprintln(that.out, msgLost)
		case entity.Won:
			fmt.Fprintln(that.out, msgWon)
		}
	}

	return nil
}

func (that *Console) handleFlag(ctx context.Context, args []string) error {
	row, col, err := that.coords("flag", args)
	if err != nil {
		return err
	}

	state, err := that.manager.ToggleFlag(ctx, that.gameID, row, col)
	if err != nil {
		return err
	}

	that.render(state)

	return nil
}

func (that *Console) coords(command string, args []string) (int, int, error) {
	if that.gameID == "" {
		return 0, 0, errNoActiveGame
	}

	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: usage: %s <row> <col>", errUsage, command)
	}

	values, err := parseInts(args)
	if err != nil {
		return 0, 0, err
	}

	return values[0], values[1], nil
}

func (that *Console) handleSave(ctx context.Context, _ []string) error {
	if that.gameID == "" {
		return errNoActiveGame
	}

	saveID, err := that.manager.Save(ctx, that.gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(that.out, "Game saved successfully as %s.\n", saveID)

	return nil
}

func (that *Console) handleLoad(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: load <save-id>", errUsage)
	}

	state, err := that.manager.Load(ctx, args[0])
	if err != nil {
		return err
	}

	that.switchGame(ctx, state)

	return nil
}

func (that *Console) handleDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: delete <save-id>", errUsage)
	}

	if err := that.manager.DeleteSave(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(that.out, "Save %s deleted.\n", args[0])

	return nil
}

func (that *Console) handleShow(ctx context.Context, _ []string) error {
	if that.gameID == "" {
		return errNoActiveGame
	}

	state, err := that.manager.State(ctx, that.gameID)
	if err != nil {
		return err
	}

	that.render(state)

	return nil
}

func (that *Console) handlePresets(_ context.Context, _ []string) error {
	for _, preset := range append(entity.Presets(), entity.DefaultPreset) {
		fmt.Fprintln(that.out, preset.String())
	}
	fmt.Fprintln(that.out, "custom: custom <rows> <cols> <mines>")

	return nil
}

func (that *Console) handleHelp(_ context.Context, _ []string) error {
	fmt.Fprint(that.out, `Commands:
  new [preset]                  start a new game (see "presets")
  custom <rows> <cols> <mines>  start a custom game
  restart                       same size, new mines
  reveal <row> <col>  (r)       reveal a cell
  flag <row> <col>    (f)       place or remove a flag
  save                          save the current game
  load <save-id>                load a saved game
  delete <save-id>              remove a saved game
  show                          print the board
  quit                          leave
`)

	return nil
}

func (that *Console) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errNotNumeric, arg)
		}
		values[i] = value
	}

	return values, nil
}
