package repository

import (
	"context"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
)

// AppointmentRepository is the persistence port for Appointment.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	Update(ctx context.Context, appt *entity.Appointment) error
	// ListByBranch with branchID == "" lists across all branches (HQ view).
	ListByBranch(ctx context.Context, branchID string, from, to time.Time, limit, offset int) ([]*entity.Appointment, error)
}
