package repository

import (
	"context"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

// ApprovalLogRepository is the persistence port for the append-only approval
// history. There is no update or delete: decisions are only ever appended.
type ApprovalLogRepository interface {
	Create(ctx context.Context, log *entity.ApprovalLog) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.ApprovalLog, error)
}
