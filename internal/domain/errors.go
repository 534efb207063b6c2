package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	// Onboarding workflow errors.
	ErrBranchNotFound    = errors.New("invalid branch code")
	ErrInvalidInvitation = errors.New("invalid invitation code")
	ErrInvitationUsed    = errors.New("invitation code already used")
	ErrNotApproved       = errors.New("account pending approval")
	ErrInvalidRole       = errors.New("invalid role")
)
