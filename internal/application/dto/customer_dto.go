package dto

import "time"

// CreateCustomerRequest customer creation input. BranchID is only honored for
// HQ callers; branch users always write into their own branch.
type CreateCustomerRequest struct {
	BranchID string `json:"branch_id" validate:"omitempty,uuid"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Email    string `json:"email" validate:"omitempty,email"`
	Memo     string `json:"memo" validate:"omitempty,max=1000"`
}

// UpdateCustomerRequest customer update input.
type UpdateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
	Email string `json:"email" validate:"omitempty,email"`
	Memo  string `json:"memo" validate:"omitempty,max=1000"`
}

// CustomerResponse one customer.
type CustomerResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
