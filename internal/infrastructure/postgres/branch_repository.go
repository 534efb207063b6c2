package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

var _ repository.BranchRepository = (*BranchRepo)(nil)

const branchColumns = `id, code, name, address, phone, owner_id, created_by, deleted_at, created_at, updated_at`

// BranchRepo implements repository.BranchRepository over PostgreSQL (pool or tx).
// All lookups exclude soft-deleted rows; uniqueness of code is enforced by a
// partial unique index on (code) WHERE deleted_at IS NULL.
type BranchRepo struct {
	q Querier
}

// NewBranchRepository builds the branch persistence adapter. Pass a pool or tx (Querier).
func NewBranchRepository(q Querier) *BranchRepo {
	return &BranchRepo{q: q}
}

// Create persists a new branch. ErrDuplicate when the code is taken by a live row.
func (r *BranchRepo) Create(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (` + branchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		branch.ID, branch.Code, branch.Name, branch.Address, branch.Phone,
		branch.OwnerID, branch.CreatedBy, branch.DeletedAt, branch.CreatedAt, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID fetches a live branch by ID; nil when absent or deleted.
func (r *BranchRepo) GetByID(ctx context.Context, id string) (*entity.Branch, error) {
	return r.getOne(ctx, `SELECT `+branchColumns+` FROM branches WHERE id = $1 AND deleted_at IS NULL`, id)
}

// GetByCode fetches a live branch by its human-assigned code.
func (r *BranchRepo) GetByCode(ctx context.Context, code string) (*entity.Branch, error) {
	return r.getOne(ctx, `SELECT `+branchColumns+` FROM branches WHERE code = $1 AND deleted_at IS NULL`, code)
}

func (r *BranchRepo) getOne(ctx context.Context, query string, arg any) (*entity.Branch, error) {
	var b entity.Branch
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&b.ID, &b.Code, &b.Name, &b.Address, &b.Phone, &b.OwnerID, &b.CreatedBy,
		&b.DeletedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// List returns live branches, newest first.
func (r *BranchRepo) List(ctx context.Context, limit, offset int) ([]*entity.Branch, error) {
	query := `
		SELECT ` + branchColumns + `
		FROM branches WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()

	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(
			&b.ID, &b.Code, &b.Name, &b.Address, &b.Phone, &b.OwnerID, &b.CreatedBy,
			&b.DeletedAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update rewrites the mutable branch fields.
func (r *BranchRepo) Update(ctx context.Context, branch *entity.Branch) error {
	query := `
		UPDATE branches
		SET code = $2, name = $3, address = $4, phone = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		branch.ID, branch.Code, branch.Name, branch.Address, branch.Phone, branch.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update branch: %w", err)
	}
	return nil
}

// SetOwner assigns the owning user.
func (r *BranchRepo) SetOwner(ctx context.Context, branchID, ownerID string) error {
	query := `UPDATE branches SET owner_id = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(ctx, query, branchID, ownerID)
	if err != nil {
		return fmt.Errorf("set branch owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBranchNotFound
	}
	return nil
}

// SoftDelete stamps deleted_at; the row stays.
func (r *BranchRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE branches SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	tag, err := r.q.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("soft delete branch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBranchNotFound
	}
	return nil
}
