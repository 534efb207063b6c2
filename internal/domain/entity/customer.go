package entity

import "time"

// Customer is a branch-scoped salon customer.
type Customer struct {
	ID        string
	BranchID  string
	Name      string
	Phone     string
	Email     string
	Memo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
