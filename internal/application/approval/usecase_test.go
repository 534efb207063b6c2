package approval_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davinlab/salonlink-api/internal/application/approval"
	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }
func (r *fakeUserRepo) UpdateApproval(_ context.Context, userID, actorID string, approved bool, at time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Approved = approved
	u.ApprovedBy = &actorID
	u.ApprovedAt = &at
	return nil
}
func (r *fakeUserRepo) List(_ context.Context, _ repository.UserFilter) ([]*entity.User, error) {
	return nil, nil
}

type fakeLogRepo struct {
	logs []*entity.ApprovalLog
}

func (r *fakeLogRepo) Create(_ context.Context, l *entity.ApprovalLog) error {
	cp := *l
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *fakeLogRepo) ListByUser(_ context.Context, userID string, _, _ int) ([]*entity.ApprovalLog, error) {
	var out []*entity.ApprovalLog
	for _, l := range r.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func branchUser(id string, role entity.Role, branchID string) *entity.User {
	u := &entity.User{ID: id, Role: role, Active: true}
	if branchID != "" {
		u.BranchID = &branchID
	}
	return u
}

func TestSetApproval_ApproveStampsActorAndLogs(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"u1": branchUser("u1", entity.RoleOwner, "b1"),
	}}
	logs := &fakeLogRepo{}
	uc := approval.New(users, logs)

	out, err := uc.SetApproval(context.Background(), "hq-1", "u1", true, "checked business license")
	require.NoError(t, err)
	assert.True(t, out.OK)

	u := users.users["u1"]
	assert.True(t, u.Approved)
	require.NotNil(t, u.ApprovedBy)
	assert.Equal(t, "hq-1", *u.ApprovedBy)
	assert.NotNil(t, u.ApprovedAt)

	require.Len(t, logs.logs, 1)
	assert.Equal(t, "checked business license", logs.logs[0].Reason)
	assert.True(t, logs.logs[0].Approved)
}

func TestSetApproval_RejectKeepsProfile(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"u1": branchUser("u1", entity.RoleStaff, "b1"),
	}}
	logs := &fakeLogRepo{}
	uc := approval.New(users, logs)

	_, err := uc.SetApproval(context.Background(), "hq-1", "u1", false, "unverified")
	require.NoError(t, err)

	u := users.users["u1"]
	require.NotNil(t, u, "rejection never deletes the profile")
	assert.False(t, u.Approved)
	require.Len(t, logs.logs, 1)
	assert.False(t, logs.logs[0].Approved)

	// The same user can be approved later.
	_, err = uc.SetApproval(context.Background(), "hq-1", "u1", true, "")
	require.NoError(t, err)
	assert.True(t, users.users["u1"].Approved)
	assert.Len(t, logs.logs, 2, "the audit trail is append-only")
}

// Approval must refuse profiles that would break the role/branch rule: an
// OWNER or STAFF without a branch, or an HQ profile carrying one.
func TestSetApproval_RefusesInvariantViolations(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"no-branch-owner": branchUser("no-branch-owner", entity.RoleOwner, ""),
		"branched-hq":     branchUser("branched-hq", entity.RoleHQ, "b1"),
	}}
	uc := approval.New(users, &fakeLogRepo{})

	_, err := uc.SetApproval(context.Background(), "hq-1", "no-branch-owner", true, "")
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.SetApproval(context.Background(), "hq-1", "branched-hq", true, "")
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Rejection is always allowed; it takes nothing away.
	_, err = uc.SetApproval(context.Background(), "hq-1", "no-branch-owner", false, "")
	assert.NoError(t, err)
}

func TestSetApproval_UnknownUser(t *testing.T) {
	uc := approval.New(&fakeUserRepo{users: map[string]*entity.User{}}, &fakeLogRepo{})

	_, err := uc.SetApproval(context.Background(), "hq-1", "missing", true, "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// A missing user mid-batch is reported in its slot and the rest proceed.
func TestSetApprovalBatch_FailuresAreIndependent(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"u1": branchUser("u1", entity.RoleOwner, "b1"),
		"u3": branchUser("u3", entity.RoleStaff, "b1"),
	}}
	uc := approval.New(users, &fakeLogRepo{})

	results := uc.SetApprovalBatch(context.Background(), "hq-1", []string{"u1", "u2", "u3"}, true, "")
	require.Len(t, results, 3)

	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
	assert.NotEmpty(t, results[1].Error)
	assert.True(t, results[2].OK)

	assert.True(t, users.users["u1"].Approved)
	assert.True(t, users.users["u3"].Approved, "a failure earlier in the batch must not block later users")
}

func TestHistory_ReturnsUserTrail(t *testing.T) {
	users := &fakeUserRepo{users: map[string]*entity.User{
		"u1": branchUser("u1", entity.RoleOwner, "b1"),
		"u2": branchUser("u2", entity.RoleStaff, "b1"),
	}}
	logs := &fakeLogRepo{}
	uc := approval.New(users, logs)

	_, err := uc.SetApproval(context.Background(), "hq-1", "u1", true, "first")
	require.NoError(t, err)
	_, err = uc.SetApproval(context.Background(), "hq-1", "u2", true, "")
	require.NoError(t, err)
	_, err = uc.SetApproval(context.Background(), "hq-1", "u1", false, "second")
	require.NoError(t, err)

	trail, err := uc.History(context.Background(), "u1", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, "first", trail[0].Reason)
	assert.Equal(t, "second", trail[1].Reason)
}
