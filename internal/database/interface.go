package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/studytimer/internal/models"
)

// SessionRepository defines session-history operations.
type SessionRepository interface {
	RecordSession(ctx context.Context, s models.Session) (models.Session, error)
	ListSessions(ctx context.Context, limit int) ([]models.Session, error)
	SummarizeSince(ctx context.Context, since time.Time) ([]models.SessionSummary, error)
	ClearSessions(ctx context.Context) (int64, error)
}

// SettingsRepository defines key/value preference operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	SessionRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
