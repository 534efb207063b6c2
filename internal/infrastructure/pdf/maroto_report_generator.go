// Package pdf renders the HQ branch-performance report with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SalonLink + period                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Code | Branch | Appts | Done | Cancelled | Revenue  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL REVENUE                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appreport "github.com/davinlab/salonlink-api/internal/application/report"
	"github.com/davinlab/salonlink-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer groups thousands in counts and amounts.
var printer = message.NewPrinter(language.English)

// MarotoReportGenerator implements report.Generator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateBranchReport renders the per-branch table and returns the PDF bytes.
func (g *MarotoReportGenerator) GenerateBranchReport(
	_ context.Context,
	from, to time.Time,
	rows []repository.BranchStatsRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("SalonLink Branch Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Revenue)
		m.AddRows(branchRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(from, to time.Time) core.Row {
	period := fmt.Sprintf("Period: %s to %s",
		from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02"))
	return row.New(16).Add(
		col.New(7).Add(
			text.New("SalonLink", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Branch performance report", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Code", 2, align.Left),
		h("Branch", 4, align.Left),
		h("Appts", 1, align.Right),
		h("Done", 1, align.Right),
		h("Cancelled", 2, align.Right),
		h("Revenue", 2, align.Right),
	)
}

func branchRow(r repository.BranchStatsRow) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		cell(r.BranchCode, 2, align.Left),
		cell(r.BranchName, 4, align.Left),
		cell(printer.Sprintf("%d", r.Appointments), 1, align.Right),
		cell(printer.Sprintf("%d", r.Completed), 1, align.Right),
		cell(printer.Sprintf("%d", r.Cancelled), 2, align.Right),
		cell(formatMoney(r.Revenue), 2, align.Right),
	)
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL REVENUE:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// formatMoney renders a decimal amount with grouped thousands, e.g. 1,250,000.
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%.2f", f)
}

// Ensure MarotoReportGenerator implements report.Generator.
var _ appreport.Generator = (*MarotoReportGenerator)(nil)
