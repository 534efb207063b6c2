package dto

import "time"

// UserResponse one user, without credentials.
type UserResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Role       string     `json:"role"`
	BranchID   *string    `json:"branch_id,omitempty"`
	Approved   bool       `json:"approved"`
	ApprovedBy *string    `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ListUsersRequest HQ user listing filters.
type ListUsersRequest struct {
	PageRequest
	Role        string `query:"role" validate:"omitempty,oneof=HQ OWNER STAFF"`
	BranchID    string `query:"branch_id" validate:"omitempty,uuid"`
	PendingOnly bool   `query:"pending_only"`
}

// ChangeRoleRequest HQ role-change input. BranchID may be empty when the
// target already has a branch assignment.
type ChangeRoleRequest struct {
	Role     string `json:"role" validate:"required,oneof=OWNER STAFF"`
	BranchID string `json:"branch_id" validate:"omitempty,uuid"`
}

// UpdateProfileRequest self-service profile update (account settings).
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Phone string `json:"phone" validate:"required,min=1,max=30"`
}

// SetActiveRequest HQ activation toggle.
type SetActiveRequest struct {
	Active bool `json:"active"`
}
