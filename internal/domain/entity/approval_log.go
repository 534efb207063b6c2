package entity

import "time"

// ApprovalLog is one append-only record per approval decision. The user row
// carries the current flag; this table carries the history.
type ApprovalLog struct {
	ID        string
	UserID    string
	ActorID   string
	Approved  bool
	Reason    string
	CreatedAt time.Time
}
