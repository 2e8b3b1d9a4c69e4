package repository

import (
	"context"

	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
)

// SaveRepository stores sessions in the text save format under an id.
type SaveRepository interface {
	Save(ctx context.Context, id string, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}
