package dto

// StatsRequest reporting period, inclusive start / exclusive end.
type StatsRequest struct {
	From string `query:"from" validate:"omitempty"` // YYYY-MM-DD, defaults to first of current month
	To   string `query:"to" validate:"omitempty"`   // YYYY-MM-DD, defaults to tomorrow
}

// BranchStatsDTO one branch's aggregates over the period.
type BranchStatsDTO struct {
	BranchID     string `json:"branch_id"`
	BranchCode   string `json:"branch_code"`
	BranchName   string `json:"branch_name"`
	Appointments int    `json:"appointments"`
	Completed    int    `json:"completed"`
	Cancelled    int    `json:"cancelled"`
	Revenue      string `json:"revenue"` // decimal string
}

// StatsReportDTO the full statistics response.
type StatsReportDTO struct {
	From         string           `json:"from"`
	To           string           `json:"to"`
	Branches     []BranchStatsDTO `json:"branches"`
	TotalRevenue string           `json:"total_revenue"`
}
