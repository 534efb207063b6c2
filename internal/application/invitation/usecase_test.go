package invitation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/application/invitation"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

type fakeInvRepo struct {
	byID    map[string]*entity.Invitation
	created []*entity.Invitation
	deleted []string
}

func newFakeInvRepo() *fakeInvRepo {
	return &fakeInvRepo{byID: map[string]*entity.Invitation{}}
}

func (r *fakeInvRepo) Create(_ context.Context, inv *entity.Invitation) error {
	cp := *inv
	r.created = append(r.created, &cp)
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeInvRepo) GetByID(_ context.Context, id string) (*entity.Invitation, error) {
	return r.byID[id], nil
}

func (r *fakeInvRepo) List(_ context.Context, _, _ int) ([]*entity.Invitation, error) {
	return r.created, nil
}

func (r *fakeInvRepo) ListByBranch(_ context.Context, branchID string, _, _ int) ([]*entity.Invitation, error) {
	var out []*entity.Invitation
	for _, inv := range r.created {
		if inv.BranchID == branchID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvRepo) Redeem(_ context.Context, _, _, _ string, _ time.Time) (*entity.Invitation, error) {
	return nil, domain.ErrInvalidInvitation
}

func (r *fakeInvRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	delete(r.byID, id)
	return nil
}

type fakeBranchRepo struct {
	branches map[string]*entity.Branch
}

func (r *fakeBranchRepo) Create(_ context.Context, _ *entity.Branch) error { return nil }
func (r *fakeBranchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	return r.branches[id], nil
}
func (r *fakeBranchRepo) GetByCode(_ context.Context, _ string) (*entity.Branch, error) {
	return nil, nil
}
func (r *fakeBranchRepo) List(_ context.Context, _, _ int) ([]*entity.Branch, error) {
	return nil, nil
}
func (r *fakeBranchRepo) Update(_ context.Context, _ *entity.Branch) error          { return nil }
func (r *fakeBranchRepo) SetOwner(_ context.Context, _, _ string) error             { return nil }
func (r *fakeBranchRepo) SoftDelete(_ context.Context, _ string, _ time.Time) error { return nil }

const testExpiry = 168 * time.Hour

var (
	hqActor    = dto.Actor{UserID: "hq-1", Role: entity.RoleHQ}
	ownerActor = dto.Actor{UserID: "owner-1", BranchID: "b1", Role: entity.RoleOwner}
	staffActor = dto.Actor{UserID: "staff-1", BranchID: "b1", Role: entity.RoleStaff}
)

func newUC(invRepo *fakeInvRepo, branches map[string]*entity.Branch) *invitation.UseCase {
	return invitation.New(invRepo, &fakeBranchRepo{branches: branches}, testExpiry)
}

func TestCreate_HQInvitesOwner(t *testing.T) {
	invRepo := newFakeInvRepo()
	uc := newUC(invRepo, map[string]*entity.Branch{"b1": {ID: "b1", Code: "GANGNAM-01"}})

	out, err := uc.Create(context.Background(), hqActor, dto.CreateInvitationRequest{
		Email:    "Owner@Salonlink.Test",
		Role:     "OWNER",
		BranchID: "b1",
	})
	require.NoError(t, err)

	assert.Equal(t, "owner@salonlink.test", out.Email, "emails are stored lowercased")
	assert.Equal(t, "OWNER", out.Role)
	assert.Equal(t, "b1", out.BranchID)
	assert.Equal(t, "hq-1", out.InvitedBy)
	assert.NotEmpty(t, out.Code)
	assert.WithinDuration(t, time.Now().Add(testExpiry), out.ExpiresAt, 5*time.Second,
		"expiry comes from configuration")
}

func TestCreate_HQRequiresBranchID(t *testing.T) {
	uc := newUC(newFakeInvRepo(), map[string]*entity.Branch{})

	_, err := uc.Create(context.Background(), hqActor, dto.CreateInvitationRequest{
		Email: "owner@salonlink.test",
		Role:  "OWNER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_HQUnknownBranch(t *testing.T) {
	uc := newUC(newFakeInvRepo(), map[string]*entity.Branch{})

	_, err := uc.Create(context.Background(), hqActor, dto.CreateInvitationRequest{
		Email:    "owner@salonlink.test",
		Role:     "OWNER",
		BranchID: "missing",
	})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)
}

func TestCreate_OwnerInvitesStaffIntoOwnBranch(t *testing.T) {
	invRepo := newFakeInvRepo()
	uc := newUC(invRepo, map[string]*entity.Branch{})

	// A client-supplied branch_id must be ignored for owners.
	out, err := uc.Create(context.Background(), ownerActor, dto.CreateInvitationRequest{
		Email:    "staff@salonlink.test",
		Role:     "STAFF",
		BranchID: "someone-elses-branch",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", out.BranchID, "owner invitations are pinned to the inviter's branch")
}

func TestCreate_OwnerCannotInviteOwner(t *testing.T) {
	uc := newUC(newFakeInvRepo(), map[string]*entity.Branch{})

	_, err := uc.Create(context.Background(), ownerActor, dto.CreateInvitationRequest{
		Email: "other@salonlink.test",
		Role:  "OWNER",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_HQCannotInviteStaff(t *testing.T) {
	uc := newUC(newFakeInvRepo(), map[string]*entity.Branch{})

	_, err := uc.Create(context.Background(), hqActor, dto.CreateInvitationRequest{
		Email:    "staff@salonlink.test",
		Role:     "STAFF",
		BranchID: "b1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_StaffCannotInvite(t *testing.T) {
	uc := newUC(newFakeInvRepo(), map[string]*entity.Branch{})

	_, err := uc.Create(context.Background(), staffActor, dto.CreateInvitationRequest{
		Email: "x@salonlink.test",
		Role:  "STAFF",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreate_HQRoleNotInvitable(t *testing.T) {
	uc := newUC(newFakeInvRepo(), map[string]*entity.Branch{})

	_, err := uc.Create(context.Background(), hqActor, dto.CreateInvitationRequest{
		Email:    "x@salonlink.test",
		Role:     "HQ",
		BranchID: "b1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestList_ScopedByRole(t *testing.T) {
	invRepo := newFakeInvRepo()
	uc := newUC(invRepo, map[string]*entity.Branch{"b1": {ID: "b1"}, "b2": {ID: "b2"}})

	_, err := uc.Create(context.Background(), hqActor, dto.CreateInvitationRequest{
		Email: "o1@salonlink.test", Role: "OWNER", BranchID: "b2",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), ownerActor, dto.CreateInvitationRequest{
		Email: "s1@salonlink.test", Role: "STAFF",
	})
	require.NoError(t, err)

	all, err := uc.List(context.Background(), hqActor, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "HQ sees every invitation")

	own, err := uc.List(context.Background(), ownerActor, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, own, 1, "an owner sees only their branch")
	assert.Equal(t, "b1", own[0].BranchID)

	_, err = uc.List(context.Background(), staffActor, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete_HQOnlyAndUnusedOnly(t *testing.T) {
	invRepo := newFakeInvRepo()
	uc := newUC(invRepo, map[string]*entity.Branch{"b1": {ID: "b1"}})

	out, err := uc.Create(context.Background(), hqActor, dto.CreateInvitationRequest{
		Email: "o1@salonlink.test", Role: "OWNER", BranchID: "b1",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(context.Background(), ownerActor, out.ID), domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(context.Background(), hqActor, "missing"), domain.ErrNotFound)

	// Mark redeemed: revocation must refuse.
	now := time.Now()
	invRepo.byID[out.ID].UsedAt = &now
	assert.ErrorIs(t, uc.Delete(context.Background(), hqActor, out.ID), domain.ErrInvitationUsed)

	invRepo.byID[out.ID].UsedAt = nil
	require.NoError(t, uc.Delete(context.Background(), hqActor, out.ID))
	assert.Contains(t, invRepo.deleted, out.ID)
}
