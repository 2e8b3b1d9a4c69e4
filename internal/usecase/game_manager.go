package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
	"github.com/rocketscienceinc/minesweeper-backend/internal/pkg"
)

type saveRepo interface {
	Save(ctx context.Context, id string, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameState is a snapshot of one session for presentation.
type GameState struct {
	ID             string
	Preset         entity.Preset
	MinesRemaining int
	Elapsed        int
	Outcome        entity.Outcome
	Cells          [][]entity.CellView
	Changed        []entity.Coord
}

type game struct {
	mu      sync.Mutex
	preset  entity.Preset
	session *entity.Session
}

func (that *game) state(id string, changed []entity.Coord) *GameState {
	return &GameState{
		ID:             id,
		Preset:         that.preset,
		MinesRemaining: that.session.MinesRemaining(),
		Elapsed:        that.session.ElapsedTime(),
		Outcome:        that.session.Outcome(),
		Cells:          that.session.Views(),
		Changed:        changed,
	}
}

// GameManager owns live sessions by id and serializes every call into a session,
// so a clock goroutine and a player can drive the same game.
type GameManager struct {
	logger   *slog.Logger
	saveRepo saveRepo
	newRand  func() *rand.Rand

	mu    sync.RWMutex
	games map[string]*game
}

type Option func(*GameManager)

// WithRandSource - overrides the randomness used for new boards.
func WithRandSource(newRand func() *rand.Rand) Option {
	return func(that *GameManager) {
		that.newRand = newRand
	}
}

func NewGameManager(logger *slog.Logger, saveRepo saveRepo, opts ...Option) *GameManager {
	manager := &GameManager{
		logger:   logger.With("component", "game_manager"),
		saveRepo: saveRepo,
		newRand: func() *rand.Rand {
			return entity.NewRand(time.Now().UnixNano())
		},

		games: make(map[string]*game),
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// StartGame - new session from a named preset.
func (that *GameManager) StartGame(ctx context.Context, presetName string) (*GameState, error) {
	preset, err := entity.FindPreset(presetName)
	if err != nil {
		return nil, fmt.Errorf("failed to find preset: %w", err)
	}

	return that.startGame(ctx, preset)
}

// StartCustomGame - new session with user-chosen dimensions.
func (that *GameManager) StartCustomGame(ctx context.Context, rows, cols, mines int) (*GameState, error) {
	preset, err := entity.CustomPreset(rows, cols, mines)
	if err != nil {
		return nil, fmt.Errorf("failed to build custom game: %w", err)
	}

	return that.startGame(ctx, preset)
}

func (that *GameManager) startGame(_ context.Context, preset entity.Preset) (*GameState, error) {
	session, err := entity.NewSession(preset.Rows, preset.Cols, preset.Mines, that.newRand())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	id := pkg.GenerateGameID()
	g := &game{preset: preset, session: session}

	that.mu.Lock()
	that.games[id] = g
	that.mu.Unlock()

	that.logger.Info("game started", "game_id", id, "preset", preset.Name,
		"rows", preset.Rows, "cols", preset.Cols, "mines", preset.Mines)

	return g.state(id, nil), nil
}

// Restart - replaces the session behind id with a fresh layout of the same size.
func (that *GameManager) Restart(_ context.Context, id string) (*GameState, error) {
	g, err := that.getGame(id)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	session, err := entity.NewSession(g.preset.Rows, g.preset.Cols, g.preset.Mines, that.newRand())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	g.session = session

	that.logger.Info("game restarted", "game_id", id)

	return g.state(id, nil), nil
}

func (that *GameManager) Reveal(_ context.Context, id string, row, col int) (*GameState, error) {
	log := that.logger.With("method", "Reveal", "game_id", id)

	g, err := that.getGame(id)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	before := g.session.Outcome()

	changed, err := g.session.Reveal(row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to reveal cell: %w", err)
	}

	log.Debug("cells revealed", "row", row, "col", col, "count", len(changed))

	if outcome := g.session.Outcome(); outcome != before {
		log.Info("game finished", "outcome", outcome.String(), "elapsed", g.session.ElapsedTime())
	}

	return g.state(id, changed), nil
}

func (that *GameManager) ToggleFlag(_ context.Context, id string, row, col int) (*GameState, error) {
	g, err := that.getGame(id)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	toggled, err := g.session.ToggleFlag(row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle flag: %w", err)
	}

	var changed []entity.Coord
	if toggled {
		changed = []entity.Coord{{Row: row, Col: col}}
	}

	return g.state(id, changed), nil
}

func (that *GameManager) State(_ context.Context, id string) (*GameState, error) {
	g, err := that.getGame(id)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state(id, nil), nil
}

// Close - forgets a live session.
func (that *GameManager) Close(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}
	delete(that.games, id)

	return nil
}

// TickAll - advances the clock of every live session by one second.
func (that *GameManager) TickAll() {
	that.mu.RLock()
	games := make([]*game, 0, len(that.games))
	for _, g := range that.games {
		games = append(games, g)
	}
	that.mu.RUnlock()

	for _, g := range games {
		g.mu.Lock()
		g.session.Tick()
		g.mu.Unlock()
	}
}

// Save - stores the layout and clock of a live session, returning the save id.
func (that *GameManager) Save(ctx context.Context, id string) (string, error) {
	log := that.logger.With("method", "Save", "game_id", id)

	g, err := that.getGame(id)
	if err != nil {
		return "", err
	}

	// The board is immutable, so a restored copy can be written without holding the lock.
	g.mu.Lock()
	snapshot, err := entity.RestoreSession(g.session.Board(), g.session.ElapsedTime())
	g.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("failed to snapshot session: %w", err)
	}

	saveID := pkg.GenerateSaveID()
	if err = that.saveRepo.Save(ctx, saveID, snapshot); err != nil {
		return "", fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("game saved", "save_id", saveID)

	return saveID, nil
}

// Load - starts a new live session from a save.
func (that *GameManager) Load(ctx context.Context, saveID string) (*GameState, error) {
	log := that.logger.With("method", "Load", "save_id", saveID)

	session, err := that.saveRepo.GetByID(ctx, saveID)
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}

	board := session.Board()
	g := &game{
		preset:  presetFor(board.Rows(), board.Cols(), board.MineCount()),
		session: session,
	}

	id := pkg.GenerateGameID()

	that.mu.Lock()
	that.games[id] = g
	that.mu.Unlock()

	log.Info("game loaded", "game_id", id, "elapsed", session.ElapsedTime())

	return g.state(id, nil), nil
}

func (that *GameManager) DeleteSave(ctx context.Context, saveID string) error {
	if err := that.saveRepo.DeleteByID(ctx, saveID); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	return nil
}

func (that *GameManager) getGame(id string) (*game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	g, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return g, nil
}

// presetFor - the named preset matching a layout, or a custom one.
func presetFor(rows, cols, mines int) entity.Preset {
	candidates := append(entity.Presets(), entity.DefaultPreset)
	for _, preset := range candidates {
		if preset.Rows == rows && preset.Cols == cols && preset.Mines == mines {
			return preset
		}
	}

	return entity.Preset{Name: entity.CustomPresetName, Rows: rows, Cols: cols, Mines: mines}
}
