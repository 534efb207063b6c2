package postgres

import (
	"context"
	"fmt"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

var _ repository.ApprovalLogRepository = (*ApprovalLogRepo)(nil)

// ApprovalLogRepo implements repository.ApprovalLogRepository over PostgreSQL
// (pool or tx). Append-only: no UPDATE or DELETE statements exist here.
type ApprovalLogRepo struct {
	q Querier
}

// NewApprovalLogRepository builds the approval history adapter. Pass a pool or tx (Querier).
func NewApprovalLogRepository(q Querier) *ApprovalLogRepo {
	return &ApprovalLogRepo{q: q}
}

// Create appends one approval decision.
func (r *ApprovalLogRepo) Create(ctx context.Context, log *entity.ApprovalLog) error {
	query := `
		INSERT INTO approval_logs (id, user_id, actor_id, approved, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.UserID, log.ActorID, log.Approved, log.Reason, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert approval log: %w", err)
	}
	return nil
}

// ListByUser returns one subject's decision history, newest first.
func (r *ApprovalLogRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ApprovalLog, error) {
	query := `
		SELECT id, user_id, actor_id, approved, reason, created_at
		FROM approval_logs WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list approval logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.ApprovalLog
	for rows.Next() {
		var l entity.ApprovalLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.ActorID, &l.Approved, &l.Reason, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan approval log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
