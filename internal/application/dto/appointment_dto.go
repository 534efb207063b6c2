package dto

import "time"

// CreateAppointmentRequest appointment creation input. Price is a decimal
// string to avoid float drift over money.
type CreateAppointmentRequest struct {
	BranchID    string    `json:"branch_id" validate:"omitempty,uuid"`
	CustomerID  string    `json:"customer_id" validate:"required,uuid"`
	StaffID     string    `json:"staff_id" validate:"required,uuid"`
	Service     string    `json:"service" validate:"required,min=1,max=100"`
	Price       string    `json:"price" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Memo        string    `json:"memo" validate:"omitempty,max=1000"`
}

// UpdateAppointmentRequest appointment update input.
type UpdateAppointmentRequest struct {
	CustomerID  string    `json:"customer_id" validate:"required,uuid"`
	StaffID     string    `json:"staff_id" validate:"required,uuid"`
	Service     string    `json:"service" validate:"required,min=1,max=100"`
	Price       string    `json:"price" validate:"required"`
	Status      string    `json:"status" validate:"required,oneof=scheduled done cancelled no_show"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Memo        string    `json:"memo" validate:"omitempty,max=1000"`
}

// ListAppointmentsRequest date-windowed listing.
type ListAppointmentsRequest struct {
	PageRequest
	BranchID string `query:"branch_id" validate:"omitempty,uuid"`
	From     string `query:"from"` // YYYY-MM-DD, defaults to today
	To       string `query:"to"`   // YYYY-MM-DD exclusive, defaults to from+1d
}

// AppointmentResponse one appointment.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	CustomerID  string    `json:"customer_id"`
	StaffID     string    `json:"staff_id"`
	Service     string    `json:"service"`
	Price       string    `json:"price"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Memo        string    `json:"memo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
