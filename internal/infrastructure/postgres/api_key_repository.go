package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

var _ repository.APIKeyRepository = (*APIKeyRepo)(nil)

// APIKeyRepo implements repository.APIKeyRepository over PostgreSQL (pool or tx).
type APIKeyRepo struct {
	q Querier
}

// NewAPIKeyRepository builds the API key persistence adapter. Pass a pool or tx (Querier).
func NewAPIKeyRepository(q Querier) *APIKeyRepo {
	return &APIKeyRepo{q: q}
}

// Create persists a new key.
func (r *APIKeyRepo) Create(ctx context.Context, key *entity.APIKey) error {
	query := `
		INSERT INTO api_keys (id, key, label, user_id, revoked_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		key.ID, key.Key, key.Label, key.UserID, key.RevokedAt, key.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert api key: %w", err)
	}
	return nil
}

// GetByKey resolves a live key; nil when unknown or revoked.
func (r *APIKeyRepo) GetByKey(ctx context.Context, key string) (*entity.APIKey, error) {
	query := `
		SELECT id, key, label, user_id, revoked_at, created_at
		FROM api_keys WHERE key = $1 AND revoked_at IS NULL`
	var k entity.APIKey
	err := r.q.QueryRow(ctx, query, key).Scan(
		&k.ID, &k.Key, &k.Label, &k.UserID, &k.RevokedAt, &k.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get api key: %w", err)
	}
	return &k, nil
}

// List returns all keys, newest first.
func (r *APIKeyRepo) List(ctx context.Context, limit, offset int) ([]*entity.APIKey, error) {
	query := `
		SELECT id, key, label, user_id, revoked_at, created_at
		FROM api_keys ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	defer rows.Close()

	var list []*entity.APIKey
	for rows.Next() {
		var k entity.APIKey
		if err := rows.Scan(&k.ID, &k.Key, &k.Label, &k.UserID, &k.RevokedAt, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan api key: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// Revoke stamps revoked_at. ErrNotFound when no live row matched.
func (r *APIKeyRepo) Revoke(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE api_keys SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL`
	tag, err := r.q.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("revoke api key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
