package models

import "time"

// Session is a countdown that ran all the way to zero.
type Session struct {
	ID              string
	Mode            string
	DurationSeconds int
	CompletedAt     time.Time
}

// SessionSummary aggregates completed sessions for one mode.
type SessionSummary struct {
	Mode         string
	Count        int
	TotalSeconds int
}
