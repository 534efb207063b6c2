package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

const appointmentColumns = `id, branch_id, customer_id, staff_id, service, price, status, scheduled_at, memo, created_at, updated_at`

// AppointmentRepo implements repository.AppointmentRepository over PostgreSQL (pool or tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository builds the appointment persistence adapter. Pass a pool or tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persists a new appointment.
func (r *AppointmentRepo) Create(ctx context.Context, appt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (` + appointmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		appt.ID, appt.BranchID, appt.CustomerID, appt.StaffID, appt.Service,
		appt.Price, appt.Status, appt.ScheduledAt, appt.Memo, appt.CreatedAt, appt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID fetches an appointment by ID; nil when absent.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.BranchID, &a.CustomerID, &a.StaffID, &a.Service, &a.Price,
		&a.Status, &a.ScheduledAt, &a.Memo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// Update rewrites the mutable appointment fields.
func (r *AppointmentRepo) Update(ctx context.Context, appt *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET customer_id = $2, staff_id = $3, service = $4, price = $5, status = $6,
		    scheduled_at = $7, memo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		appt.ID, appt.CustomerID, appt.StaffID, appt.Service, appt.Price,
		appt.Status, appt.ScheduledAt, appt.Memo, appt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// ListByBranch returns appointments in [from, to) for one branch, or all
// branches when branchID is empty (HQ view). Soonest first.
func (r *AppointmentRepo) ListByBranch(ctx context.Context, branchID string, from, to time.Time, limit, offset int) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE scheduled_at >= $1 AND scheduled_at < $2`
	args := []any{from, to}
	if branchID != "" {
		args = append(args, branchID)
		query += fmt.Sprintf(" AND branch_id = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY scheduled_at ASC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(
			&a.ID, &a.BranchID, &a.CustomerID, &a.StaffID, &a.Service, &a.Price,
			&a.Status, &a.ScheduledAt, &a.Memo, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
