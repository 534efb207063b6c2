package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// BranchStatsRow is one branch's aggregate over a period.
type BranchStatsRow struct {
	BranchID     string
	BranchCode   string
	BranchName   string
	Appointments int
	Completed    int
	Cancelled    int
	Revenue      decimal.Decimal // sum of completed appointment prices
}

// StatsRepository runs the aggregate queries behind HQ statistics.
type StatsRepository interface {
	BranchStats(ctx context.Context, from, to time.Time) ([]BranchStatsRow, error)
}
