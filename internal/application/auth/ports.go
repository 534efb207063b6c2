package auth

import (
	"context"

	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// TxRunner runs the registration write path inside one database transaction:
// redeeming an invitation, inserting the user, and (for HQ) inserting the
// branch commit or roll back together, so a failed registration leaves no
// orphaned rows.
type TxRunner interface {
	RunSignup(ctx context.Context, fn func(
		users repository.UserRepository,
		branches repository.BranchRepository,
		invitations repository.InvitationRepository,
	) error) error
}
