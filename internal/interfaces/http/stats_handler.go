package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/application/report"
	"github.com/davinlab/salonlink-api/internal/application/usecase"
	"github.com/davinlab/salonlink-api/internal/domain"
)

// StatsHandler handles HQ statistics, JSON and PDF.
type StatsHandler struct {
	stats  *usecase.StatsUseCase
	report *report.UseCase
}

// NewStatsHandler builds the handler.
func NewStatsHandler(stats *usecase.StatsUseCase, report *report.UseCase) *StatsHandler {
	return &StatsHandler{stats: stats, report: report}
}

// BranchStats godoc
// @Summary      Per-branch statistics
// @Description  Appointment counts and completed revenue per branch over the period.
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD, defaults to first of current month"
// @Param        to    query  string  false  "YYYY-MM-DD exclusive, defaults to tomorrow"
// @Success      200   {object}  dto.StatsReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/stats/branches [get]
func (h *StatsHandler) BranchStats(c *fiber.Ctx) error {
	in := dto.StatsRequest{From: c.Query("from"), To: c.Query("to")}
	out, err := h.stats.BranchReport(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid period, use YYYY-MM-DD with from < to"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BranchStatsPDF godoc
// @Summary      Per-branch statistics as PDF
// @Tags         stats
// @Security     Bearer
// @Produce      application/pdf
// @Param        from  query  string  false  "YYYY-MM-DD, defaults to first of current month"
// @Param        to    query  string  false  "YYYY-MM-DD exclusive, defaults to tomorrow"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/stats/branches/pdf [get]
func (h *StatsHandler) BranchStatsPDF(c *fiber.Ctx) error {
	in := dto.StatsRequest{From: c.Query("from"), To: c.Query("to")}
	pdfBytes, err := h.report.BranchReportPDF(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid period, use YYYY-MM-DD with from < to"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("branch-report-%s.pdf", time.Now().Format("20060102"))
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
