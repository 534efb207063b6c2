package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// StatsUseCase HQ statistics: per-branch appointment counts and completed
// revenue over a period.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase builds the usecase with its query port.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// BranchReport aggregates the period. Defaults: first of the current month
// through tomorrow.
func (uc *StatsUseCase) BranchReport(ctx context.Context, in dto.StatsRequest) (*dto.StatsReportDTO, error) {
	from, to, err := parsePeriod(in.From, in.To)
	if err != nil {
		return nil, err
	}
	rows, err := uc.statsRepo.BranchStats(ctx, from, to)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	branches := make([]dto.BranchStatsDTO, 0, len(rows))
	for _, r := range rows {
		total = total.Add(r.Revenue)
		branches = append(branches, dto.BranchStatsDTO{
			BranchID:     r.BranchID,
			BranchCode:   r.BranchCode,
			BranchName:   r.BranchName,
			Appointments: r.Appointments,
			Completed:    r.Completed,
			Cancelled:    r.Cancelled,
			Revenue:      r.Revenue.String(),
		})
	}
	return &dto.StatsReportDTO{
		From:         from.Format("2006-01-02"),
		To:           to.Format("2006-01-02"),
		Branches:     branches,
		TotalRevenue: total.String(),
	}, nil
}

// Rows returns the raw aggregate rows for the PDF report.
func (uc *StatsUseCase) Rows(ctx context.Context, in dto.StatsRequest) ([]repository.BranchStatsRow, time.Time, time.Time, error) {
	from, to, err := parsePeriod(in.From, in.To)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	rows, err := uc.statsRepo.BranchStats(ctx, from, to)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	return rows, from, to, nil
}

func parsePeriod(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	var err error
	if fromStr != "" {
		from, err = time.ParseInLocation("2006-01-02", fromStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if toStr != "" {
		to, err = time.ParseInLocation("2006-01-02", toStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}
