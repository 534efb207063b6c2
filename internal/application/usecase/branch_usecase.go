package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// BranchUseCase branch administration. Creation, update and deletion are
// HQ-only (enforced at the route); owners read their own branch.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
}

// NewBranchUseCase builds the usecase with its persistence port.
func NewBranchUseCase(branchRepo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo}
}

// Create persists a new branch with an HQ-assigned code.
func (uc *BranchUseCase) Create(ctx context.Context, actorID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID fetches one live branch.
func (uc *BranchUseCase) GetByID(ctx context.Context, id string) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

// List returns live branches.
func (uc *BranchUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.BranchResponse, error) {
	page.DefaultPage()
	branches, err := uc.branchRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, *toBranchResponse(b))
	}
	return out, nil
}

// Update rewrites code/name/address/phone.
func (uc *BranchUseCase) Update(ctx context.Context, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	branch.Code = in.Code
	branch.Name = in.Name
	branch.Address = in.Address
	branch.Phone = in.Phone
	branch.UpdatedAt = time.Now()
	if err := uc.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// Delete soft-deletes the branch; the code becomes available for reuse.
func (uc *BranchUseCase) Delete(ctx context.Context, id string) error {
	return uc.branchRepo.SoftDelete(ctx, id, time.Now())
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:        b.ID,
		Code:      b.Code,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		OwnerID:   b.OwnerID,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
