package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/talkready/backend/pkg/logger"
	"github.com/talkready/backend/services/progress/entity"
	"github.com/talkready/backend/services/progress/storage"
)

type store struct {
	db *sql.DB
}

func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return db, nil
}

func New(db *sql.DB) storage.Storage {
	return &store{db: db}
}

func (s *store) UpdateProgress(ctx context.Context, userID string, update func(p *entity.Progress)) (*entity.Progress, error) {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	progress := &entity.Progress{UserID: userID}
	var lastActive sql.NullTime

	err = tx.QueryRowContext(ctx, `
		SELECT id, current_streak, longest_streak, streak_freezes, last_active_date
		FROM user_progress
		WHERE user_id = $1
		FOR UPDATE`, userID).
		Scan(&progress.ID, &progress.CurrentStreak, &progress.LongestStreak, &progress.StreakFreezes, &lastActive)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		progress.ID = uuid.New().String()
		log.Debug("creating progress record", "user_id", userID)
	case err != nil:
		return nil, fmt.Errorf("failed to load progress: %w", err)
	default:
		if lastActive.Valid {
			progress.LastActiveDate = lastActive.Time
		}
	}

	update(progress)
	progress.UpdatedAt = time.Now()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_progress (id, user_id, current_streak, longest_streak, streak_freezes, last_active_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			streak_freezes = EXCLUDED.streak_freezes,
			last_active_date = EXCLUDED.last_active_date,
			updated_at = EXCLUDED.updated_at`,
		progress.ID, progress.UserID, progress.CurrentStreak, progress.LongestStreak,
		progress.StreakFreezes, progress.LastActiveDate, progress.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit progress update: %w", err)
	}

	log.Debug("progress updated", "user_id", userID, "current_streak", progress.CurrentStreak)
	return progress, nil
}
