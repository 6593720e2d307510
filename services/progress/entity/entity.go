package entity

import "time"

// Progress tracks a user's practice streak. A zero LastActiveDate means the
// user has never recorded an activity.
type Progress struct {
	ID             string
	UserID         string
	CurrentStreak  int
	LongestStreak  int
	StreakFreezes  int
	LastActiveDate time.Time
	UpdatedAt      time.Time
}

type RecordActivityResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
	StreakFreezes int    `json:"streakFreezes"`
}
