package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/talkready/backend/pkg/logger"
	"github.com/talkready/backend/services/progress/entity"
	"github.com/talkready/backend/services/progress/storage"
)

// A streak freeze covers one missed day; freezes accumulate up to this cap,
// one earned per 30-day milestone.
const maxStreakFreezes = 5

type Usecase interface {
	RecordActivity(ctx context.Context, userID string) (*entity.RecordActivityResponse, error)
}

type usecase struct {
	storage storage.Storage
	now     func() time.Time
}

func New(storage storage.Storage) Usecase {
	return &usecase{
		storage: storage,
		now:     time.Now,
	}
}

// RecordActivity applies the day's practice to the user's streak inside one
// atomic storage update.
func (u *usecase) RecordActivity(ctx context.Context, userID string) (*entity.RecordActivityResponse, error) {
	log := logger.FromContext(ctx)
	today := u.now()

	var status string
	progress, err := u.storage.UpdateProgress(ctx, userID, func(p *entity.Progress) {
		status = advanceStreak(p, today)
	})
	if err != nil {
		log.Error("failed to record practice activity", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to record practice activity: %w", err)
	}

	log.Info("practice activity recorded",
		"user_id", userID,
		"current_streak", progress.CurrentStreak,
		"status", status)

	return &entity.RecordActivityResponse{
		Success:       true,
		Message:       status,
		CurrentStreak: progress.CurrentStreak,
		LongestStreak: progress.LongestStreak,
		StreakFreezes: progress.StreakFreezes,
	}, nil
}

// advanceStreak mutates p for an activity happening at "today" and returns
// the user-facing status message. Day comparisons are on local midnights, so
// two activities within the same calendar day count once.
func advanceStreak(p *entity.Progress, today time.Time) string {
	daysDiff := 0
	if !p.LastActiveDate.IsZero() {
		daysDiff = calendarDaysBetween(p.LastActiveDate, today)
	}

	var status string
	switch {
	case p.LastActiveDate.IsZero():
		// First recorded activity ever.
		p.CurrentStreak++
		status = "Streak continued."
	case daysDiff == 0:
		status = "Activity already recorded today. Streak maintained."
	case daysDiff == 1 || daysDiff < 0:
		p.CurrentStreak++
		status = "Streak continued."
	case daysDiff == 2:
		if p.StreakFreezes > 0 {
			p.StreakFreezes--
			p.CurrentStreak++
			status = fmt.Sprintf("Streak saved using 1 Streak Freeze. %d remaining.", p.StreakFreezes)
		} else {
			p.CurrentStreak = 1
			status = "Streak reset to 1 due to missed day (no freeze)."
		}
	default:
		p.CurrentStreak = 1
		status = "Streak reset to 1 due to multiple missed days."
	}

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}

	if p.CurrentStreak > 0 && p.CurrentStreak%30 == 0 && p.StreakFreezes < maxStreakFreezes {
		p.StreakFreezes++
		status += fmt.Sprintf(" Bonus: Earned 1 Streak Freeze for reaching %d-day milestone!", p.CurrentStreak)
	}

	p.LastActiveDate = today
	return status
}

func calendarDaysBetween(from, to time.Time) int {
	fromMidnight := midnight(from)
	toMidnight := midnight(to)
	// Rounding absorbs the odd hour a DST transition adds or removes.
	return int(math.Round(toMidnight.Sub(fromMidnight).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
