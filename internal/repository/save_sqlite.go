package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/minesweeper-backend/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-backend/internal/entity"
	"github.com/rocketscienceinc/minesweeper-backend/internal/savefile"
)

type sqliteSave struct {
	conn *sql.DB
}

// NewSQLiteSaveRepository - expects the saves table created by sqlite.Storage.Init.
func NewSQLiteSaveRepository(conn *sql.DB) SaveRepository {
	return &sqliteSave{
		conn: conn,
	}
}

func (that *sqliteSave) Save(ctx context.Context, id string, session *entity.Session) error {
	data, err := savefile.Marshal(session)
	if err != nil {
		return fmt.Errorf("can't encode save: %w", err)
	}

	query := `INSERT INTO saves (id, payload, created_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`

	if _, err = that.conn.ExecContext(ctx, query, id, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("can't save game: %w", err)
	}

	return nil
}

func (that *sqliteSave) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	query := `SELECT payload FROM saves WHERE id = ?`

	var data string

	err := that.conn.QueryRowContext(ctx, query, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find save: %w", err)
	}

	session, err := savefile.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("can't decode save %s: %w", id, err)
	}

	return session, nil
}

func (that *sqliteSave) DeleteByID(ctx context.Context, id string) error {
	result, err := that.conn.ExecContext(ctx, `DELETE FROM saves WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("can't delete save: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't count deleted saves: %w", err)
	}

	if affected == 0 {
		return apperror.ErrSaveNotFound
	}

	return nil
}
