// Package report renders the HQ branch-performance report as a PDF.
package report

import (
	"context"
	"time"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/application/usecase"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

// Generator renders aggregate rows into a document. Implemented in
// infrastructure.
type Generator interface {
	GenerateBranchReport(ctx context.Context, from, to time.Time, rows []repository.BranchStatsRow) ([]byte, error)
}

// UseCase glues the stats aggregation to the document generator.
type UseCase struct {
	stats *usecase.StatsUseCase
	gen   Generator
}

// NewUseCase wires the stats usecase and the generator.
func NewUseCase(stats *usecase.StatsUseCase, gen Generator) *UseCase {
	return &UseCase{stats: stats, gen: gen}
}

// BranchReportPDF aggregates the period and renders the PDF bytes.
func (uc *UseCase) BranchReportPDF(ctx context.Context, in dto.StatsRequest) ([]byte, error) {
	rows, from, to, err := uc.stats.Rows(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateBranchReport(ctx, from, to, rows)
}
