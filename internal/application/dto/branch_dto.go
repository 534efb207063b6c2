package dto

import "time"

// CreateBranchRequest HQ branch creation input.
type CreateBranchRequest struct {
	Code    string `json:"code" validate:"required,min=1,max=30"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
}

// UpdateBranchRequest HQ branch update input.
type UpdateBranchRequest struct {
	Code    string `json:"code" validate:"required,min=1,max=30"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
}

// BranchResponse one branch.
type BranchResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	OwnerID   *string   `json:"owner_id,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
