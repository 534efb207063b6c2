package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// APIKeyUseCase HQ-only issuance and revocation of server-to-server keys.
type APIKeyUseCase struct {
	keyRepo repository.APIKeyRepository
}

// NewAPIKeyUseCase builds the usecase with its persistence port.
func NewAPIKeyUseCase(keyRepo repository.APIKeyRepository) *APIKeyUseCase {
	return &APIKeyUseCase{keyRepo: keyRepo}
}

// Create issues a key owned by the calling admin.
func (uc *APIKeyUseCase) Create(ctx context.Context, actorID string, in dto.CreateAPIKeyRequest) (*dto.APIKeyResponse, error) {
	key := &entity.APIKey{
		ID:        uuid.New().String(),
		Key:       uuid.New().String(),
		Label:     in.Label,
		UserID:    actorID,
		CreatedAt: time.Now(),
	}
	if err := uc.keyRepo.Create(ctx, key); err != nil {
		return nil, err
	}
	return toAPIKeyResponse(key), nil
}

// List returns all keys, revoked included.
func (uc *APIKeyUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.APIKeyResponse, error) {
	page.DefaultPage()
	keys, err := uc.keyRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.APIKeyResponse, 0, len(keys))
	for _, k := range keys {
		out = append(out, *toAPIKeyResponse(k))
	}
	return out, nil
}

// Revoke stamps the key revoked; requests carrying it stop authenticating.
func (uc *APIKeyUseCase) Revoke(ctx context.Context, id string) error {
	return uc.keyRepo.Revoke(ctx, id, time.Now())
}

// ResolveUserID resolves a live key to its owning user for the auth
// middleware; "" when unknown or revoked.
func (uc *APIKeyUseCase) ResolveUserID(ctx context.Context, key string) (string, error) {
	k, err := uc.keyRepo.GetByKey(ctx, key)
	if err != nil {
		return "", err
	}
	if k == nil {
		return "", nil
	}
	return k.UserID, nil
}

func toAPIKeyResponse(k *entity.APIKey) *dto.APIKeyResponse {
	if k == nil {
		return nil
	}
	return &dto.APIKeyResponse{
		ID:        k.ID,
		Key:       k.Key,
		Label:     k.Label,
		UserID:    k.UserID,
		RevokedAt: k.RevokedAt,
		CreatedAt: k.CreatedAt,
	}
}
