package entity

import "time"

// APIKey is a server-to-server credential issued by HQ. A request carrying a
// live key authenticates as the issuing user.
type APIKey struct {
	ID        string
	Key       string
	Label     string
	UserID    string
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Revoked reports whether the key has been revoked.
func (k *APIKey) Revoked() bool { return k.RevokedAt != nil }
