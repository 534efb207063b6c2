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

// CustomerUseCase branch-scoped customer CRUD. HQ works across branches;
// OWNER/STAFF are confined to their own.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase builds the usecase with its persistence port.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create persists a customer in the actor's branch (HQ may target any branch).
func (uc *CustomerUseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	branchID, err := resolveBranch(actor, in.BranchID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Memo:      in.Memo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID fetches one customer the actor may see.
func (uc *CustomerUseCase) GetByID(ctx context.Context, actor dto.Actor, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkBranchAccess(actor, customer.BranchID); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List returns the customers visible to the actor.
func (uc *CustomerUseCase) List(ctx context.Context, actor dto.Actor, page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.DefaultPage()
	branchID := "" // HQ: all branches
	if actor.Role != entity.RoleHQ {
		branchID = actor.BranchID
	}
	customers, err := uc.customerRepo.ListByBranch(ctx, branchID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Update rewrites the customer's contact fields.
func (uc *CustomerUseCase) Update(ctx context.Context, actor dto.Actor, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkBranchAccess(actor, customer.BranchID); err != nil {
		return nil, err
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Memo = in.Memo
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer.
func (uc *CustomerUseCase) Delete(ctx context.Context, actor dto.Actor, id string) error {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if err := checkBranchAccess(actor, customer.BranchID); err != nil {
		return err
	}
	return uc.customerRepo.Delete(ctx, id)
}

// resolveBranch picks the branch a write lands in: HQ may name one, branch
// users always use their own.
func resolveBranch(actor dto.Actor, requested string) (string, error) {
	if actor.Role == entity.RoleHQ {
		if requested == "" {
			return "", domain.ErrInvalidInput
		}
		return requested, nil
	}
	if actor.BranchID == "" {
		return "", domain.ErrConflict
	}
	return actor.BranchID, nil
}

// checkBranchAccess rejects branch users reaching outside their branch.
func checkBranchAccess(actor dto.Actor, branchID string) error {
	if actor.Role == entity.RoleHQ {
		return nil
	}
	if actor.BranchID != branchID {
		return domain.ErrForbidden
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		BranchID:  c.BranchID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Memo:      c.Memo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
