// Package backup assembles a full-data snapshot for the HQ export endpoint.
package backup

import (
	"context"
	"time"

	"github.com/davinlab/salonlink-api/internal/domain/entity"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// pageSize for the collection loops. Exports page through every table.
const pageSize = 500

// Snapshot is everything an export carries. Password hashes never leave the
// database: the exporter only sees what this struct holds.
type Snapshot struct {
	GeneratedAt  time.Time
	Branches     []*entity.Branch
	Users        []*entity.User
	Customers    []*entity.Customer
	Appointments []*entity.Appointment
	Invitations  []*entity.Invitation
}

// Exporter serializes a snapshot. Implemented in infrastructure.
type Exporter interface {
	Export(snap *Snapshot) ([]byte, error)
}

// UseCase collects every table and hands the snapshot to the exporter.
type UseCase struct {
	userRepo     repository.UserRepository
	branchRepo   repository.BranchRepository
	customerRepo repository.CustomerRepository
	apptRepo     repository.AppointmentRepository
	invRepo      repository.InvitationRepository
	exporter     Exporter
}

// NewUseCase wires the repositories and the serializer.
func NewUseCase(
	userRepo repository.UserRepository,
	branchRepo repository.BranchRepository,
	customerRepo repository.CustomerRepository,
	apptRepo repository.AppointmentRepository,
	invRepo repository.InvitationRepository,
	exporter Exporter,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		branchRepo:   branchRepo,
		customerRepo: customerRepo,
		apptRepo:     apptRepo,
		invRepo:      invRepo,
		exporter:     exporter,
	}
}

// Export builds and serializes the snapshot. Appointments are bounded to the
// last year so the export stays a working backup, not an archive dump.
func (uc *UseCase) Export(ctx context.Context) ([]byte, error) {
	now := time.Now()
	snap := &Snapshot{GeneratedAt: now}

	for offset := 0; ; offset += pageSize {
		page, err := uc.branchRepo.List(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		snap.Branches = append(snap.Branches, page...)
		if len(page) < pageSize {
			break
		}
	}

	for offset := 0; ; offset += pageSize {
		page, err := uc.userRepo.List(ctx, repository.UserFilter{Limit: pageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		snap.Users = append(snap.Users, page...)
		if len(page) < pageSize {
			break
		}
	}

	for offset := 0; ; offset += pageSize {
		page, err := uc.customerRepo.ListByBranch(ctx, "", pageSize, offset)
		if err != nil {
			return nil, err
		}
		snap.Customers = append(snap.Customers, page...)
		if len(page) < pageSize {
			break
		}
	}

	from := now.AddDate(-1, 0, 0)
	to := now.AddDate(0, 0, 1)
	for offset := 0; ; offset += pageSize {
		page, err := uc.apptRepo.ListByBranch(ctx, "", from, to, pageSize, offset)
		if err != nil {
			return nil, err
		}
		snap.Appointments = append(snap.Appointments, page...)
		if len(page) < pageSize {
			break
		}
	}

	for offset := 0; ; offset += pageSize {
		page, err := uc.invRepo.List(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		snap.Invitations = append(snap.Invitations, page...)
		if len(page) < pageSize {
			break
		}
	}

	return uc.exporter.Export(snap)
}
