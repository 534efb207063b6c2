package repository

import (
	"context"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

// BranchRepository is the persistence port for Branch. Lookups see only live
// (non-soft-deleted) rows.
type BranchRepository interface {
	Create(ctx context.Context, branch *entity.Branch) error
	GetByID(ctx context.Context, id string) (*entity.Branch, error)
	GetByCode(ctx context.Context, code string) (*entity.Branch, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Branch, error)
	Update(ctx context.Context, branch *entity.Branch) error
	SetOwner(ctx context.Context, branchID, ownerID string) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
