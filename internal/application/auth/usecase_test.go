package auth_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davinlab/salonlink-api/internal/application/auth"
	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// In-memory repositories. A single mutex serializes all access so the
// concurrency test exercises the same one-winner redemption contract the SQL
// conditional UPDATE provides.

type memStore struct {
	mu          sync.Mutex
	users       map[string]*entity.User // by ID
	branches    map[string]*entity.Branch
	invitations map[string]*entity.Invitation // by code
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*entity.User{},
		branches:    map[string]*entity.Branch{},
		invitations: map[string]*entity.Invitation{},
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdateApproval(_ context.Context, userID, actorID string, approved bool, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Approved = approved
	u.ApprovedBy = &actorID
	u.ApprovedAt = &at
	return nil
}

func (r *memUserRepo) List(_ context.Context, _ repository.UserFilter) ([]*entity.User, error) {
	return nil, nil
}

type memBranchRepo struct{ s *memStore }

func (r *memBranchRepo) Create(_ context.Context, b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *b
	r.s.branches[b.ID] = &cp
	return nil
}

func (r *memBranchRepo) GetByID(_ context.Context, id string) (*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.branches[id]
	if !ok || b.DeletedAt != nil {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *memBranchRepo) GetByCode(_ context.Context, code string) (*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.branches {
		if b.Code == code && b.DeletedAt == nil {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memBranchRepo) List(_ context.Context, _, _ int) ([]*entity.Branch, error) { return nil, nil }
func (r *memBranchRepo) Update(_ context.Context, _ *entity.Branch) error           { return nil }
func (r *memBranchRepo) SetOwner(_ context.Context, _, _ string) error              { return nil }
func (r *memBranchRepo) SoftDelete(_ context.Context, _ string, _ time.Time) error  { return nil }

type memInvitationRepo struct{ s *memStore }

func (r *memInvitationRepo) Create(_ context.Context, inv *entity.Invitation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *inv
	r.s.invitations[inv.Code] = &cp
	return nil
}

func (r *memInvitationRepo) GetByID(_ context.Context, _ string) (*entity.Invitation, error) {
	return nil, nil
}

func (r *memInvitationRepo) List(_ context.Context, _, _ int) ([]*entity.Invitation, error) {
	return nil, nil
}

func (r *memInvitationRepo) ListByBranch(_ context.Context, _ string, _, _ int) ([]*entity.Invitation, error) {
	return nil, nil
}

// Redeem mirrors the conditional-UPDATE semantics: check and mutate under one
// lock, so exactly one caller can win.
func (r *memInvitationRepo) Redeem(_ context.Context, code, email, usedBy string, now time.Time) (*entity.Invitation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invitations[code]
	if !ok || inv.Email != email || inv.UsedAt != nil || !inv.ExpiresAt.After(now) {
		return nil, domain.ErrInvalidInvitation
	}
	inv.UsedAt = &now
	inv.UsedBy = &usedBy
	cp := *inv
	return &cp, nil
}

func (r *memInvitationRepo) Delete(_ context.Context, _ string) error { return nil }

// passthroughTx runs the signup function against the shared store. Rollback
// is not simulated; the flows under test fail before any partial write.
type passthroughTx struct{ s *memStore }

func (tx *passthroughTx) RunSignup(_ context.Context, fn func(
	users repository.UserRepository,
	branches repository.BranchRepository,
	invitations repository.InvitationRepository,
) error) error {
	return fn(&memUserRepo{tx.s}, &memBranchRepo{tx.s}, &memInvitationRepo{tx.s})
}

func newTestAuthUC(s *memStore) *auth.AuthUseCase {
	return auth.NewAuthUseCase(&memUserRepo{s}, &passthroughTx{s}, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "salonlink-test",
	})
}

func hqRequest(email string) dto.RegisterRequest {
	return dto.RegisterRequest{
		Role:          "HQ",
		Email:         email,
		Password:      "secret1",
		Name:          "Head Quarters",
		Phone:         "010-0000-0000",
		NewBranchName: "Main Office",
	}
}

func TestRegister_HQCreatesUserAndBranch(t *testing.T) {
	s := newMemStore()
	uc := newTestAuthUC(s)

	out, err := uc.Register(context.Background(), hqRequest("hq@salonlink.test"))
	require.NoError(t, err)

	assert.Equal(t, "HQ", out.Role)
	assert.Nil(t, out.BranchID, "HQ profiles carry no branch")
	assert.False(t, out.Approved, "every registration starts unapproved")
	assert.Len(t, s.branches, 1, "HQ signup bootstraps a branch")
	for _, b := range s.branches {
		assert.Equal(t, "Main Office", b.Name)
		assert.True(t, strings.HasPrefix(b.Code, "HQ"))
	}
}

func TestRegister_OwnerJoinsBranchByCode(t *testing.T) {
	s := newMemStore()
	s.branches["b1"] = &entity.Branch{ID: "b1", Code: "GANGNAM-01", Name: "Gangnam"}
	uc := newTestAuthUC(s)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Role:       "OWNER",
		Email:      "owner@salonlink.test",
		Password:   "secret1",
		Name:       "Owner",
		Phone:      "010-1111-2222",
		BranchCode: "GANGNAM-01",
	})
	require.NoError(t, err)
	require.NotNil(t, out.BranchID)
	assert.Equal(t, "b1", *out.BranchID)
	assert.False(t, out.Approved)
}

// An invalid branch code must leave nothing behind: no user row, nothing to
// clean up before retrying with the right code.
func TestRegister_OwnerInvalidBranchCode_NoProfileLeftBehind(t *testing.T) {
	s := newMemStore()
	uc := newTestAuthUC(s)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Role:       "OWNER",
		Email:      "owner@salonlink.test",
		Password:   "secret1",
		Name:       "Owner",
		Phone:      "010-1111-2222",
		BranchCode: "NO-SUCH-CODE",
	})
	assert.ErrorIs(t, err, domain.ErrBranchNotFound)
	assert.Empty(t, s.users, "failed registration must not create a user")

	// Same email immediately retries with a valid code and succeeds.
	s.branches["b1"] = &entity.Branch{ID: "b1", Code: "GANGNAM-01", Name: "Gangnam"}
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Role:       "OWNER",
		Email:      "owner@salonlink.test",
		Password:   "secret1",
		Name:       "Owner",
		Phone:      "010-1111-2222",
		BranchCode: "GANGNAM-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", *out.BranchID)
}

func TestRegister_StaffRedeemsInvitation(t *testing.T) {
	s := newMemStore()
	s.branches["b1"] = &entity.Branch{ID: "b1", Code: "GANGNAM-01", Name: "Gangnam"}
	s.invitations["INV-1"] = &entity.Invitation{
		ID: "i1", Code: "INV-1", Email: "staff@salonlink.test",
		Role: entity.RoleStaff, BranchID: "b1",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	uc := newTestAuthUC(s)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Role:       "STAFF",
		Email:      "staff@salonlink.test",
		Password:   "secret1",
		Name:       "Staff",
		Phone:      "010-3333-4444",
		InviteCode: "INV-1",
	})
	require.NoError(t, err)
	require.NotNil(t, out.BranchID)
	assert.Equal(t, "b1", *out.BranchID, "the invitation decides the branch, never client input")

	inv := s.invitations["INV-1"]
	require.NotNil(t, inv.UsedAt, "redemption must stamp used_at")
	assert.Equal(t, out.ID, *inv.UsedBy)
}

func TestRegister_StaffExpiredInvitation_Rejected(t *testing.T) {
	s := newMemStore()
	s.invitations["INV-OLD"] = &entity.Invitation{
		ID: "i1", Code: "INV-OLD", Email: "staff@salonlink.test",
		Role: entity.RoleStaff, BranchID: "b1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	uc := newTestAuthUC(s)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Role:       "STAFF",
		Email:      "staff@salonlink.test",
		Password:   "secret1",
		Name:       "Staff",
		Phone:      "010-3333-4444",
		InviteCode: "INV-OLD",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInvitation)
	assert.Empty(t, s.users)
}

func TestRegister_StaffWrongEmailOnInvitation_Rejected(t *testing.T) {
	s := newMemStore()
	s.invitations["INV-1"] = &entity.Invitation{
		ID: "i1", Code: "INV-1", Email: "invited@salonlink.test",
		Role: entity.RoleStaff, BranchID: "b1",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	uc := newTestAuthUC(s)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Role:       "STAFF",
		Email:      "someone-else@salonlink.test",
		Password:   "secret1",
		Name:       "Staff",
		Phone:      "010-3333-4444",
		InviteCode: "INV-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInvitation)
}

// Two concurrent redemptions of one invitation: exactly one may win.
func TestRegister_ConcurrentInvitationRedemption_OneWinner(t *testing.T) {
	s := newMemStore()
	s.branches["b1"] = &entity.Branch{ID: "b1", Code: "GANGNAM-01", Name: "Gangnam"}
	s.invitations["INV-1"] = &entity.Invitation{
		ID: "i1", Code: "INV-1", Email: "staff@salonlink.test",
		Role: entity.RoleStaff, BranchID: "b1",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	uc := newTestAuthUC(s)

	req := dto.RegisterRequest{
		Role:       "STAFF",
		Email:      "staff@salonlink.test",
		Password:   "secret1",
		Name:       "Staff",
		Phone:      "010-3333-4444",
		InviteCode: "INV-1",
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Register(context.Background(), req)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var okCount, failCount int
	for err := range errs {
		if err == nil {
			okCount++
		} else {
			failCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactly one registration wins the invitation")
	assert.Equal(t, 1, failCount)
	assert.Len(t, s.users, 1)
}

func TestRegister_DuplicateEmail_Rejected(t *testing.T) {
	s := newMemStore()
	uc := newTestAuthUC(s)

	_, err := uc.Register(context.Background(), hqRequest("hq@salonlink.test"))
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), hqRequest("hq@salonlink.test"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	uc := newTestAuthUC(newMemStore())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Role: "MANAGER", Email: "a@b.co", Password: "secret1", Name: "n", Phone: "p"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	in := hqRequest("not-an-email")
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = hqRequest("hq@salonlink.test")
	in.Password = "short"
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = hqRequest("hq@salonlink.test")
	in.NewBranchName = ""
	_, err = uc.Register(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_IssuesTokenAndReportsApproval(t *testing.T) {
	s := newMemStore()
	uc := newTestAuthUC(s)

	reg, err := uc.Register(context.Background(), hqRequest("hq@salonlink.test"))
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "hq@salonlink.test",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.False(t, out.Approved, "login must surface the pending state")
	assert.Equal(t, reg.ID, out.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newMemStore()
	uc := newTestAuthUC(s)
	_, err := uc.Register(context.Background(), hqRequest("hq@salonlink.test"))
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "hq@salonlink.test", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	s := newMemStore()
	uc := newTestAuthUC(s)
	reg, err := uc.Register(context.Background(), hqRequest("hq@salonlink.test"))
	require.NoError(t, err)

	s.mu.Lock()
	s.users[reg.ID].Active = false
	s.mu.Unlock()

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "hq@salonlink.test", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestIsApproved_ReadsFreshFlag(t *testing.T) {
	s := newMemStore()
	uc := newTestAuthUC(s)
	reg, err := uc.Register(context.Background(), hqRequest("hq@salonlink.test"))
	require.NoError(t, err)

	ok, err := uc.IsApproved(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	now := time.Now()
	repo := &memUserRepo{s}
	require.NoError(t, repo.UpdateApproval(context.Background(), reg.ID, "actor", true, now))

	ok, err = uc.IsApproved(context.Background(), reg.ID)
	require.NoError(t, err)
	assert.True(t, ok, "approval must take effect without a new login")
}
