package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo implements repository.StatsRepository over PostgreSQL.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository builds the statistics adapter. Pass a pool or tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// BranchStats aggregates appointment counts and completed revenue per live
// branch over [from, to). Branches with no appointments still appear.
func (r *StatsRepo) BranchStats(ctx context.Context, from, to time.Time) ([]repository.BranchStatsRow, error) {
	query := `
		SELECT b.id, b.code, b.name,
		       COUNT(a.id),
		       COUNT(a.id) FILTER (WHERE a.status = $3),
		       COUNT(a.id) FILTER (WHERE a.status = $4),
		       COALESCE(SUM(a.price) FILTER (WHERE a.status = $3), 0)
		FROM branches b
		LEFT JOIN appointments a
		       ON a.branch_id = b.id AND a.scheduled_at >= $1 AND a.scheduled_at < $2
		WHERE b.deleted_at IS NULL
		GROUP BY b.id, b.code, b.name
		ORDER BY b.code`
	rows, err := r.q.Query(ctx, query, from, to, entity.AppointmentDone, entity.AppointmentCancelled)
	if err != nil {
		return nil, fmt.Errorf("branch stats: %w", err)
	}
	defer rows.Close()

	var list []repository.BranchStatsRow
	for rows.Next() {
		var s repository.BranchStatsRow
		if err := rows.Scan(
			&s.BranchID, &s.BranchCode, &s.BranchName,
			&s.Appointments, &s.Completed, &s.Cancelled, &s.Revenue,
		); err != nil {
			return nil, fmt.Errorf("scan branch stats: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
