package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
	"github.com/rocketscienceinc/minesweeper-backend/internal/savefile"
)

const saveFileExt = ".sav"

var ErrInvalidSaveID = errors.New("invalid save id")

type fileSave struct {
	dir string
}

// NewFileSaveRepository - one "<id>.sav" text file per save inside dir.
func NewFileSaveRepository(dir string) (SaveRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}

	return &fileSave{dir: dir}, nil
}

func (that *fileSave) path(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidSaveID, id)
	}

	return filepath.Join(that.dir, id+saveFileExt), nil
}

func (that *fileSave) Save(_ context.Context, id string, session *entity.Session) error {
	path, err := that.path(id)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(that.dir, id+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = savefile.Encode(tmp, session); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to store save file: %w", err)
	}

	return nil
}

func (that *fileSave) GetByID(_ context.Context, id string) (*entity.Session, error) {
	path, err := that.path(id)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}
	defer file.Close()

	session, err := savefile.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode save %s: %w", id, err)
	}

	return session, nil
}

func (that *fileSave) DeleteByID(_ context.Context, id string) error {
	path, err := that.path(id)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return apperror.ErrSaveNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete save file: %w", err)
	}

	return nil
}
