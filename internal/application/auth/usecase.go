package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
	"github.com/davinlab/salonlink-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

const minPasswordLen = 6

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthUseCase registration, login and approval-status checks.
//
// Registration is deliberately not a create-identity-then-create-profile
// sequence: all validation runs first, and every row the flow produces is
// written inside one transaction via TxRunner, so no failure mode can leave
// an identity without a profile.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tx       TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase builds the auth usecase.
func NewAuthUseCase(userRepo repository.UserRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register creates a user according to the role-specific flow:
//
//   - HQ: the user plus a new branch with a generated placeholder code.
//   - OWNER: the user attached to an existing branch looked up by code.
//   - STAFF: the user attached to the branch of a redeemed invitation; the
//     invitation is authoritative for the branch, never client input.
//
// The new user is always unapproved; an HQ actor must flip the flag before
// the account can pass the approval gate.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, domain.ErrInvalidRole
	}
	if err := validateRegister(role, in); err != nil {
		return nil, err
	}

	// Fast duplicate check; the unique index inside the transaction is the
	// real guard.
	if existing, _ := uc.userRepo.GetByEmail(ctx, in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         role,
		Approved:     false,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.RunSignup(ctx, func(
		users repository.UserRepository,
		branches repository.BranchRepository,
		invitations repository.InvitationRepository,
	) error {
		switch role {
		case entity.RoleHQ:
			if err := users.Create(ctx, user); err != nil {
				return err
			}
			branch := &entity.Branch{
				ID:        uuid.New().String(),
				Code:      "HQ" + now.Format("20060102150405"), // placeholder, HQ renames later
				Name:      in.NewBranchName,
				Address:   in.NewBranchAddress,
				Phone:     in.NewBranchPhone,
				CreatedBy: user.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return branches.Create(ctx, branch)

		case entity.RoleOwner:
			branch, err := branches.GetByCode(ctx, in.BranchCode)
			if err != nil {
				return err
			}
			if branch == nil {
				return domain.ErrBranchNotFound
			}
			user.BranchID = &branch.ID
			return users.Create(ctx, user)

		case entity.RoleStaff:
			inv, err := invitations.Redeem(ctx, in.InviteCode, user.Email, user.ID, now)
			if err != nil {
				return err
			}
			user.BranchID = &inv.BranchID
			return users.Create(ctx, user)

		default:
			return domain.ErrInvalidRole
		}
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifies credentials, requires an active account, and returns a signed
// token. Unapproved users may log in; everything past the pending-approval
// endpoints is blocked by middleware until HQ approves them.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.BranchIDString(), string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Approved: user.Approved,
		User:     *toUserResponse(user),
	}, nil
}

// ApprovalStatus is the poll target for the pending-approval holding page.
func (uc *AuthUseCase) ApprovalStatus(ctx context.Context, userID string) (*dto.ApprovalStatusResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.ApprovalStatusResponse{Approved: user.Approved, ApprovedAt: user.ApprovedAt}, nil
}

// IsApproved backs the approval-gate middleware. The flag is read fresh per
// request so an approval takes effect without a new login.
func (uc *AuthUseCase) IsApproved(ctx context.Context, userID string) (bool, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil || !user.Active {
		return false, nil
	}
	return user.Approved, nil
}

func validateRegister(role entity.Role, in dto.RegisterRequest) error {
	if !emailRx.MatchString(in.Email) || len(in.Password) < minPasswordLen ||
		strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return domain.ErrInvalidInput
	}
	switch role {
	case entity.RoleHQ:
		if strings.TrimSpace(in.NewBranchName) == "" {
			return domain.ErrInvalidInput
		}
	case entity.RoleOwner:
		if strings.TrimSpace(in.BranchCode) == "" {
			return domain.ErrInvalidInput
		}
	case entity.RoleStaff:
		if strings.TrimSpace(in.InviteCode) == "" {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidRole
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Phone:      u.Phone,
		Role:       string(u.Role),
		BranchID:   u.BranchID,
		Approved:   u.Approved,
		ApprovedBy: u.ApprovedBy,
		ApprovedAt: u.ApprovedAt,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
