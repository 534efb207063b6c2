package entity

import "time"

// Branch is one franchise location. Code is unique among live (non-deleted)
// branches; deletion is a timestamp, never row removal, so a deleted branch's
// code may be reissued.
type Branch struct {
	ID        string
	Code      string
	Name      string
	Address   string
	Phone     string
	OwnerID   *string // nil until an owner is assigned
	CreatedBy string
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Deleted reports whether the branch is soft-deleted.
func (b *Branch) Deleted() bool { return b.DeletedAt != nil }
