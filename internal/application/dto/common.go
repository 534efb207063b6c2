package dto

import "github.com/davinlab/salonlink-api/internal/domain/entity"

// PageRequest pagination for listings.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage applies defaults when Limit/Offset are zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Actor is the authenticated caller as resolved by the middleware, passed into
// usecases for authorization decisions.
type Actor struct {
	UserID   string
	BranchID string // empty for HQ
	Role     entity.Role
}
