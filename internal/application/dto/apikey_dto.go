package dto

import "time"

// CreateAPIKeyRequest HQ key issue input.
type CreateAPIKeyRequest struct {
	Label string `json:"label" validate:"required,min=1,max=100"`
}

// APIKeyResponse one key. The key value is returned on issue and in listings;
// these are HQ-only surfaces.
type APIKeyResponse struct {
	ID        string     `json:"id"`
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	UserID    string     `json:"user_id"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
