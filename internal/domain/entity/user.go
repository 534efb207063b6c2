package entity

import "time"

// User is one profile per authenticated identity. Credentials live on the row
// itself, so a registration is a single transactional insert and can never
// leave an orphaned identity behind.
//
// Invariant: Role == HQ implies BranchID nil; OWNER/STAFF have a non-nil
// BranchID once approved (enforced at approval time).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Phone        string
	Role         Role
	BranchID     *string // nil for HQ
	Approved     bool    // the approval gate; false until an HQ actor flips it
	ApprovedBy   *string
	ApprovedAt   *time.Time
	Active       bool // deactivation is a flag, rows are never deleted
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BranchIDString returns the branch id or "" when unassigned.
func (u *User) BranchIDString() string {
	if u.BranchID == nil {
		return ""
	}
	return *u.BranchID
}
