package invitation

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// UseCase issues and lists invitation codes.
//
// Authorization matrix:
//
//	HQ    -> invites OWNER, branch_id explicit and must resolve
//	OWNER -> invites STAFF, branch forced to the inviter's own branch
//	anything else -> forbidden (owners cannot invite owners)
type UseCase struct {
	invRepo    repository.InvitationRepository
	branchRepo repository.BranchRepository
	expiry     time.Duration
}

// New builds the invitation usecase. expiry is the validity window for new codes.
func New(invRepo repository.InvitationRepository, branchRepo repository.BranchRepository, expiry time.Duration) *UseCase {
	return &UseCase{invRepo: invRepo, branchRepo: branchRepo, expiry: expiry}
}

// Create issues a single-use code bound to an email, role and branch. The code
// is handed to the invitee out-of-band; no email is sent.
func (uc *UseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil || role == entity.RoleHQ {
		return nil, domain.ErrInvalidRole
	}

	var branchID string
	switch actor.Role {
	case entity.RoleHQ:
		if role != entity.RoleOwner {
			return nil, domain.ErrForbidden
		}
		if in.BranchID == "" {
			return nil, domain.ErrInvalidInput
		}
		branch, err := uc.branchRepo.GetByID(ctx, in.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, domain.ErrBranchNotFound
		}
		branchID = branch.ID

	case entity.RoleOwner:
		if role != entity.RoleStaff {
			// Owners cannot invite owners.
			return nil, domain.ErrForbidden
		}
		if actor.BranchID == "" {
			return nil, domain.ErrConflict
		}
		branchID = actor.BranchID // any client-supplied branch is ignored

	default:
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	inv := &entity.Invitation{
		ID:        uuid.New().String(),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Role:      role,
		BranchID:  branchID,
		Code:      newCode(now),
		InvitedBy: actor.UserID,
		ExpiresAt: now.Add(uc.expiry),
		CreatedAt: now,
	}
	if err := uc.invRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvitationResponse(inv), nil
}

// List returns the invitations visible to the caller: HQ sees all, an OWNER
// only their branch's.
func (uc *UseCase) List(ctx context.Context, actor dto.Actor, page dto.PageRequest) ([]dto.InvitationResponse, error) {
	page.DefaultPage()

	var (
		list []*entity.Invitation
		err  error
	)
	switch actor.Role {
	case entity.RoleHQ:
		list, err = uc.invRepo.List(ctx, page.Limit, page.Offset)
	case entity.RoleOwner:
		list, err = uc.invRepo.ListByBranch(ctx, actor.BranchID, page.Limit, page.Offset)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.InvitationResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvitationResponse(inv))
	}
	return out, nil
}

// Delete removes an unused invitation. HQ only; a redeemed invitation is part
// of an account's history and stays.
func (uc *UseCase) Delete(ctx context.Context, actor dto.Actor, id string) error {
	if actor.Role != entity.RoleHQ {
		return domain.ErrForbidden
	}
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.UsedAt != nil {
		return domain.ErrInvitationUsed
	}
	return uc.invRepo.Delete(ctx, id)
}

// newCode builds an invite code from the issue timestamp plus a random suffix.
// Uniqueness is backed by the DB constraint; the format just keeps codes
// human-relayable.
func newCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return "INV-" + now.Format("060102150405") + "-" + suffix
}

func toInvitationResponse(inv *entity.Invitation) *dto.InvitationResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvitationResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      string(inv.Role),
		BranchID:  inv.BranchID,
		Code:      inv.Code,
		InvitedBy: inv.InvitedBy,
		ExpiresAt: inv.ExpiresAt,
		UsedAt:    inv.UsedAt,
		UsedBy:    inv.UsedBy,
		CreatedAt: inv.CreatedAt,
	}
}
