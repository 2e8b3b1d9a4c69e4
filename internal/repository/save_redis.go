package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
	"github.com/rocketscienceinc/minesweeper-backend/internal/savefile"
)

const saveKeyPrefix = "save:"

type redisSave struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSaveRepository - saves live under "save:<id>"; a zero ttl keeps them forever.
func NewRedisSaveRepository(client *redis.Client, ttl time.Duration) SaveRepository {
	return &redisSave{
		client: client,
		ttl:    ttl,
	}
}

func (that *redisSave) Save(ctx context.Context, id string, session *entity.Session) error {
	data, err := savefile.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not encode save: %w", err)
	}

	if err = that.client.Set(ctx, saveKeyPrefix+id, data, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set save: %w", err)
	}

	return nil
}

func (that *redisSave) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	response, err := that.client.Get(ctx, saveKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSaveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get save by id: %w", err)
	}

	session, err := savefile.Unmarshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode save %s: %w", id, err)
	}

	return session, nil
}

func (that *redisSave) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, saveKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete save by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSaveNotFound
	}

	return nil
}
