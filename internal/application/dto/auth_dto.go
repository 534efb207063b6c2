package dto

import "time"

// RegisterRequest registration input. Role decides which extra fields are
// required: OWNER needs branch_code, STAFF needs invite_code, HQ needs
// new_branch_name (address/phone optional).
type RegisterRequest struct {
	Role     string `json:"role" validate:"required,oneof=HQ OWNER STAFF"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Phone    string `json:"phone" validate:"required,min=1,max=30"`

	// OWNER
	BranchCode string `json:"branch_code" validate:"omitempty,max=30"`
	// STAFF
	InviteCode string `json:"invite_code" validate:"omitempty,max=60"`
	// HQ
	NewBranchName    string `json:"new_branch_name" validate:"omitempty,max=100"`
	NewBranchAddress string `json:"new_branch_address" validate:"omitempty,max=255"`
	NewBranchPhone   string `json:"new_branch_phone" validate:"omitempty,max=30"`
}

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse login output. Approved mirrors the profile flag so the client
// can route to the pending-approval page without a second call.
type LoginResponse struct {
	Token    string       `json:"token"`
	Approved bool         `json:"approved"`
	User     UserResponse `json:"user"`
}

// ApprovalStatusResponse is polled by the pending-approval holding page.
type ApprovalStatusResponse struct {
	Approved   bool       `json:"approved"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}
