package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-backend/internal/clock"
	"github.com/rocketscienceinc/minesweeper-backend/internal/config"
	"github.com/rocketscienceinc/minesweeper-backend/internal/console"
	"github.com/rocketscienceinc/minesweeper-backend/internal/repository"
	"github.com/rocketscienceinc/minesweeper-backend/internal/repository/storage"
	"github.com/rocketscienceinc/minesweeper-backend/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/minesweeper-backend/internal/usecase"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrPanic        = errors.New("recovered from panic")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(logger, conf, os.Stdin, os.Stdout)
}

// Run - wires storage, the game manager, the clock and the console, then plays until the console exits.
func Run(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	saveRepo, closeStorage, err := newSaveRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	log.Info("Storage ready", "driver", conf.Storage.Driver)

	gameUseCase := usecase.NewGameManager(logger, saveRepo)

	// run game clock
	clockErrCh := goSafe(func() error {
		clock.Run(ctx, conf.Game.TickInterval, gameUseCase.TickAll)
		return nil
	})

	// run console
	consoleErrCh := goSafe(func() error {
		return console.New(logger, gameUseCase, in, out).Run(ctx, conf.Game.Preset)
	})

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Info("Console closed, shutting down")
		return nil
	case err = <-clockErrCh:
		if err != nil {
			return fmt.Errorf("clock error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// goSafe - runs fn in a goroutine and delivers its result, turning a panic into ErrPanic.
func goSafe(fn func() error) <-chan error {
	errCh := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				errCh <- fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()

		errCh <- fn()
	}()

	return errCh
}

func newSaveRepository(ctx context.Context, conf *config.Config) (repository.SaveRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.StorageFile:
		saveRepo, err := repository.NewFileSaveRepository(conf.Storage.SaveDir)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open save directory: %w", err)
		}

		return saveRepo, func() error { return nil }, nil

	case config.StorageRedis:
		if conf.Redis.Host == "" || conf.Redis.Port == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSaveRepository(redisStorage.Connection, conf.Redis.TTL), redisStorage.Close, nil

	case config.StorageSQLite:
		sqliteStorage, err := sqlite.New(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteSaveRepository(sqliteStorage.Connection), sqliteStorage.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorageDriver, conf.Storage.Driver)
	}
}
