package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

var _ repository.InvitationRepository = (*InvitationRepo)(nil)

const invitationColumns = `id, email, role, branch_id, code, invited_by, expires_at, used_at, used_by, created_at`

// InvitationRepo implements repository.InvitationRepository over PostgreSQL (pool or tx).
type InvitationRepo struct {
	q Querier
}

// NewInvitationRepository builds the invitation persistence adapter. Pass a pool or tx (Querier).
func NewInvitationRepository(q Querier) *InvitationRepo {
	return &InvitationRepo{q: q}
}

// Create persists a new invitation. ErrDuplicate on code collision.
func (r *InvitationRepo) Create(ctx context.Context, inv *entity.Invitation) error {
	query := `
		INSERT INTO invitations (` + invitationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Email, inv.Role, inv.BranchID, inv.Code, inv.InvitedBy,
		inv.ExpiresAt, inv.UsedAt, inv.UsedBy, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

// GetByID fetches an invitation by ID; nil when absent.
func (r *InvitationRepo) GetByID(ctx context.Context, id string) (*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1`
	inv, err := scanInvitation(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

// Redeem marks the invitation used in a single conditional UPDATE. The WHERE
// clause re-checks unused and unexpired, so of any number of concurrent
// redemptions of one code exactly one sees a row; the rest get
// ErrInvalidInvitation (zero rows affected means used, expired, or wrong
// code/email — indistinguishable on purpose).
func (r *InvitationRepo) Redeem(ctx context.Context, code, email, usedBy string, now time.Time) (*entity.Invitation, error) {
	query := `
		UPDATE invitations
		SET used_at = $4, used_by = $3
		WHERE code = $1 AND email = $2 AND used_at IS NULL AND expires_at > $4
		RETURNING ` + invitationColumns
	inv, err := scanInvitation(r.q.QueryRow(ctx, query, code, email, usedBy, now))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrInvalidInvitation
		}
		return nil, fmt.Errorf("redeem invitation: %w", err)
	}
	return inv, nil
}

// List returns all invitations, newest first (HQ view).
func (r *InvitationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

// ListByBranch returns one branch's invitations, newest first (owner view).
func (r *InvitationRepo) ListByBranch(ctx context.Context, branchID string, limit, offset int) ([]*entity.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE branch_id = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset, branchID)
}

func (r *InvitationRepo) list(ctx context.Context, query string, limit, offset int, extra ...any) ([]*entity.Invitation, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Delete removes an invitation row (HQ, before use only; enforced in the usecase).
func (r *InvitationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (*entity.Invitation, error) {
	var inv entity.Invitation
	var role string
	err := row.Scan(
		&inv.ID, &inv.Email, &role, &inv.BranchID, &inv.Code, &inv.InvitedBy,
		&inv.ExpiresAt, &inv.UsedAt, &inv.UsedBy, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Role = entity.Role(role)
	return &inv, nil
}
