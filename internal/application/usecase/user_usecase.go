package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// UserUseCase user administration (HQ) and self-service profile reads/updates.
type UserUseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

// NewUserUseCase builds the usecase with its persistence ports.
func NewUserUseCase(userRepo repository.UserRepository, branchRepo repository.BranchRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, branchRepo: branchRepo}
}

// GetByID fetches one user.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(user), nil
}

// List returns users matching the HQ filter.
func (uc *UserUseCase) List(ctx context.Context, in dto.ListUsersRequest) ([]dto.UserResponse, error) {
	in.DefaultPage()
	f := repository.UserFilter{
		BranchID:    in.BranchID,
		PendingOnly: in.PendingOnly,
		Limit:       in.Limit,
		Offset:      in.Offset,
	}
	if in.Role != "" {
		role, err := entity.ParseRole(in.Role)
		if err != nil {
			return nil, domain.ErrInvalidRole
		}
		f.Role = role
	}
	users, err := uc.userRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// ChangeRole moves a user to OWNER or STAFF. A profile already at HQ is never
// reassigned here, and the target role needs a resolvable branch: the one in
// the request, or the user's existing assignment.
func (uc *UserUseCase) ChangeRole(ctx context.Context, userID string, in dto.ChangeRoleRequest) (*dto.UserResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil || role == entity.RoleHQ {
		return nil, domain.ErrInvalidRole
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role == entity.RoleHQ {
		return nil, domain.ErrConflict
	}

	branchID := in.BranchID
	if branchID == "" {
		branchID = user.BranchIDString()
	}
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}

	user.Role = role
	user.BranchID = &branch.ID
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if role == entity.RoleOwner {
		if err := uc.branchRepo.SetOwner(ctx, branch.ID, user.ID); err != nil {
			return nil, err
		}
	}
	return entityToUserResponse(user), nil
}

// SetActive toggles the deactivation flag. Rows are never deleted.
func (uc *UserUseCase) SetActive(ctx context.Context, userID string, active bool) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Active = active
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// UpdateProfile is the self-service name/phone update from account settings.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Name = in.Name
	user.Phone = in.Phone
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
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
