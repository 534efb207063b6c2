package repository

import (
	"context"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

// CustomerRepository is the persistence port for Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	// ListByBranch with branchID == "" lists across all branches (HQ view).
	ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*entity.Customer, error)
}
