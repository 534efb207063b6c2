package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// AppointmentUseCase branch-scoped appointment booking and listing.
type AppointmentUseCase struct {
	apptRepo repository.AppointmentRepository
}

// NewAppointmentUseCase builds the usecase with its persistence port.
func NewAppointmentUseCase(apptRepo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{apptRepo: apptRepo}
}

// Create books an appointment in the actor's branch (HQ may target any branch).
func (uc *AppointmentUseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	branchID, err := resolveBranch(actor, in.BranchID)
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	appt := &entity.Appointment{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		CustomerID:  in.CustomerID,
		StaffID:     in.StaffID,
		Service:     in.Service,
		Price:       price,
		Status:      entity.AppointmentScheduled,
		ScheduledAt: in.ScheduledAt,
		Memo:        in.Memo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.apptRepo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// GetByID fetches one appointment the actor may see.
func (uc *AppointmentUseCase) GetByID(ctx context.Context, actor dto.Actor, id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkBranchAccess(actor, appt.BranchID); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// List returns appointments in the requested window, scoped to the actor's
// branch unless the actor is HQ.
func (uc *AppointmentUseCase) List(ctx context.Context, actor dto.Actor, in dto.ListAppointmentsRequest) ([]dto.AppointmentResponse, error) {
	in.DefaultPage()
	from, to, err := parseDayWindow(in.From, in.To)
	if err != nil {
		return nil, err
	}
	branchID := in.BranchID
	if actor.Role != entity.RoleHQ {
		branchID = actor.BranchID
	}
	list, err := uc.apptRepo.ListByBranch(ctx, branchID, from, to, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAppointmentResponse(a))
	}
	return out, nil
}

// Update rewrites the appointment, including its status transition.
func (uc *AppointmentUseCase) Update(ctx context.Context, actor dto.Actor, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkBranchAccess(actor, appt.BranchID); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Status {
	case entity.AppointmentScheduled, entity.AppointmentDone, entity.AppointmentCancelled, entity.AppointmentNoShow:
	default:
		return nil, domain.ErrInvalidInput
	}

	appt.CustomerID = in.CustomerID
	appt.StaffID = in.StaffID
	appt.Service = in.Service
	appt.Price = price
	appt.Status = in.Status
	appt.ScheduledAt = in.ScheduledAt
	appt.Memo = in.Memo
	appt.UpdatedAt = time.Now()
	if err := uc.apptRepo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// parseDayWindow turns optional YYYY-MM-DD bounds into a [from, to) window.
// Defaults: today, one day wide.
func parseDayWindow(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if fromStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		from = parsed
	}
	to := from.AddDate(0, 0, 1)
	if toStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		to = parsed
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          a.ID,
		BranchID:    a.BranchID,
		CustomerID:  a.CustomerID,
		StaffID:     a.StaffID,
		Service:     a.Service,
		Price:       a.Price.String(),
		Status:      a.Status,
		ScheduledAt: a.ScheduledAt,
		Memo:        a.Memo,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
