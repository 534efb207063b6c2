package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentDone      = "done"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

// Appointment is a booked service at a branch.
type Appointment struct {
	ID          string
	BranchID    string
	CustomerID  string
	StaffID     string
	Service     string
	Price       decimal.Decimal
	Status      string // see Appointment* constants
	ScheduledAt time.Time
	Memo        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
