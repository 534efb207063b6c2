package repository

import (
	"context"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

// APIKeyRepository is the persistence port for APIKey.
type APIKeyRepository interface {
	Create(ctx context.Context, key *entity.APIKey) error
	// GetByKey resolves a live (non-revoked) key; nil when unknown or revoked.
	GetByKey(ctx context.Context, key string) (*entity.APIKey, error)
	List(ctx context.Context, limit, offset int) ([]*entity.APIKey, error)
	Revoke(ctx context.Context, id string, at time.Time) error
}
