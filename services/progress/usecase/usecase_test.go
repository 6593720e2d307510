package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkready/backend/services/progress/entity"
)

// memoryStorage mirrors the postgres storage contract for tests.
type memoryStorage struct {
	records map[string]*entity.Progress
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{records: make(map[string]*entity.Progress)}
}

func (s *memoryStorage) UpdateProgress(ctx context.Context, userID string, update func(p *entity.Progress)) (*entity.Progress, error) {
	p, exists := s.records[userID]
	if !exists {
		p = &entity.Progress{ID: userID, UserID: userID}
		s.records[userID] = p
	}
	update(p)
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}

func newTestUsecase(storage *memoryStorage, now time.Time) *usecase {
	return &usecase{
		storage: storage,
		now:     func() time.Time { return now },
	}
}

func day(offset int) time.Time {
	base := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)
	return base.AddDate(0, 0, offset)
}

func TestRecordActivityFirstEver(t *testing.T) {
	u := newTestUsecase(newMemoryStorage(), day(0))

	resp, err := u.RecordActivity(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.CurrentStreak)
	assert.Equal(t, 1, resp.LongestStreak)
	assert.Equal(t, "Streak continued.", resp.Message)
}

func TestRecordActivitySameDay(t *testing.T) {
	storage := newMemoryStorage()

	newTestUsecase(storage, day(0)).RecordActivity(context.Background(), "user-1")
	// Later the same day, different wall-clock time.
	u := newTestUsecase(storage, day(0).Add(7*time.Hour))

	resp, err := u.RecordActivity(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CurrentStreak)
	assert.Equal(t, "Activity already recorded today. Streak maintained.", resp.Message)
}

func TestRecordActivityConsecutiveDays(t *testing.T) {
	storage := newMemoryStorage()

	for offset := 0; offset < 5; offset++ {
		_, err := newTestUsecase(storage, day(offset)).RecordActivity(context.Background(), "user-1")
		require.NoError(t, err)
	}

	resp, err := newTestUsecase(storage, day(5)).RecordActivity(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 6, resp.CurrentStreak)
	assert.Equal(t, 6, resp.LongestStreak)
}

func TestRecordActivityMissedDayWithFreeze(t *testing.T) {
	storage := newMemoryStorage()
	storage.records["user-1"] = &entity.Progress{
		UserID:         "user-1",
		CurrentStreak:  9,
		LongestStreak:  9,
		StreakFreezes:  2,
		LastActiveDate: day(0),
	}

	resp, err := newTestUsecase(storage, day(2)).RecordActivity(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 10, resp.CurrentStreak)
	assert.Equal(t, 1, resp.StreakFreezes)
	assert.Equal(t, "Streak saved using 1 Streak Freeze. 1 remaining.", resp.Message)
}

func TestRecordActivityMissedDayWithoutFreeze(t *testing.T) {
	storage := newMemoryStorage()
	storage.records["user-1"] = &entity.Progress{
		UserID:         "user-1",
		CurrentStreak:  9,
		LongestStreak:  12,
		LastActiveDate: day(0),
	}

	resp, err := newTestUsecase(storage, day(2)).RecordActivity(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CurrentStreak)
	assert.Equal(t, 12, resp.LongestStreak)
	assert.Equal(t, "Streak reset to 1 due to missed day (no freeze).", resp.Message)
}

func TestRecordActivityLongGapResets(t *testing.T) {
	storage := newMemoryStorage()
	storage.records["user-1"] = &entity.Progress{
		UserID:         "user-1",
		CurrentStreak:  20,
		LongestStreak:  20,
		StreakFreezes:  3,
		LastActiveDate: day(0),
	}

	resp, err := newTestUsecase(storage, day(6)).RecordActivity(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CurrentStreak)
	// Freezes only cover a single missed day.
	assert.Equal(t, 3, resp.StreakFreezes)
	assert.Equal(t, "Streak reset to 1 due to multiple missed days.", resp.Message)
}

func TestRecordActivityMilestoneAwardsFreeze(t *testing.T) {
	storage := newMemoryStorage()
	storage.records["user-1"] = &entity.Progress{
		UserID:         "user-1",
		CurrentStreak:  29,
		LongestStreak:  29,
		StreakFreezes:  1,
		LastActiveDate: day(0),
	}

	resp, err := newTestUsecase(storage, day(1)).RecordActivity(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 30, resp.CurrentStreak)
	assert.Equal(t, 2, resp.StreakFreezes)
	assert.Contains(t, resp.Message, "30-day milestone")
}

func TestRecordActivityMilestoneRespectsFreezeCap(t *testing.T) {
	storage := newMemoryStorage()
	storage.records["user-1"] = &entity.Progress{
		UserID:         "user-1",
		CurrentStreak:  59,
		LongestStreak:  59,
		StreakFreezes:  5,
		LastActiveDate: day(0),
	}

	resp, err := newTestUsecase(storage, day(1)).RecordActivity(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 60, resp.CurrentStreak)
	assert.Equal(t, 5, resp.StreakFreezes)
	assert.NotContains(t, resp.Message, "milestone")
}
