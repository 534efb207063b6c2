package dto

import "time"

// CreateInvitationRequest invitation issue input. BranchID is required for HQ
// (inviting an OWNER); for an OWNER (inviting STAFF) any supplied value is
// ignored and the inviter's own branch is used.
type CreateInvitationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=OWNER STAFF"`
	BranchID string `json:"branch_id" validate:"omitempty,uuid"`
}

// InvitationResponse one invitation. The code is delivered to the invitee
// out-of-band; no email is dispatched.
type InvitationResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	BranchID  string     `json:"branch_id"`
	Code      string     `json:"code"`
	InvitedBy string     `json:"invited_by"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	UsedBy    *string    `json:"used_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
