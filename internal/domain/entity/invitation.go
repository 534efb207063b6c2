package entity

import "time"

// Invitation is a single-use, time-limited credential binding an email to a
// role and branch. It is mutated exactly once, at redemption, which sets
// UsedAt/UsedBy via a single conditional UPDATE (never a read-then-write).
type Invitation struct {
	ID        string
	Email     string
	Role      Role // OWNER or STAFF only
	BranchID  string
	Code      string
	InvitedBy string
	ExpiresAt time.Time
	UsedAt    *time.Time
	UsedBy    *string
	CreatedAt time.Time
}

// Redeemable reports whether the invitation can still be redeemed at t.
func (i *Invitation) Redeemable(t time.Time) bool {
	return i.UsedAt == nil && i.ExpiresAt.After(t)
}
