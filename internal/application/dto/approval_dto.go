package dto

import "time"

// SetApprovalRequest single-user approval toggle.
type SetApprovalRequest struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason" validate:"omitempty,max=255"`
}

// BatchApprovalRequest batch approval toggle.
type BatchApprovalRequest struct {
	UserIDs  []string `json:"user_ids" validate:"required,min=1,dive,uuid"`
	Approved bool     `json:"approved"`
	Reason   string   `json:"reason" validate:"omitempty,max=255"`
}

// ApprovalResult outcome for one user in a batch. Users are independent, so a
// failure is reported per ID instead of failing the whole batch.
type ApprovalResult struct {
	UserID string `json:"user_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// ApprovalLogResponse one audit entry.
type ApprovalLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ActorID   string    `json:"actor_id"`
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
