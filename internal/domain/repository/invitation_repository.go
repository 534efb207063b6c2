package repository

import (
	"context"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

// InvitationRepository is the persistence port for Invitation.
//
// Redeem is the only mutation path for a live invitation and must be a single
// conditional UPDATE (used_at IS NULL AND expires_at > now): two concurrent
// redemptions of one code can never both succeed. It returns the redeemed
// invitation, or ErrInvalidInvitation when no row qualified.
type InvitationRepository interface {
	Create(ctx context.Context, inv *entity.Invitation) error
	GetByID(ctx context.Context, id string) (*entity.Invitation, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Invitation, error)
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*entity.Invitation, error)
	Redeem(ctx context.Context, code, email, usedBy string, now time.Time) (*entity.Invitation, error)
	Delete(ctx context.Context, id string) error
}
