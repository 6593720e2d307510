package storage

import (
	"context"

	"github.com/talkready/backend/services/progress/entity"
)

// Storage persists practice progress. UpdateProgress applies update to the
// user's record atomically: concurrent calls for the same user never
// interleave.
type Storage interface {
	UpdateProgress(ctx context.Context, userID string, update func(p *entity.Progress)) (*entity.Progress, error)
}
