package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davinlab/salonlink-api/internal/application/approval"
	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/domain"
)

// ApprovalHandler handles the HQ approval gate (single, batch, history).
type ApprovalHandler struct {
	uc *approval.UseCase
}

// NewApprovalHandler builds the handler.
func NewApprovalHandler(uc *approval.UseCase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// SetApproval godoc
// @Summary      Approve or reject one user
// @Description  Rejection keeps the profile; the user simply stays gated and can be approved later.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "User ID"
// @Param        body  body  dto.SetApprovalRequest  true  "approved flag, optional reason"
// @Success      200   {object}  dto.ApprovalResult
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/approval [put]
func (h *ApprovalHandler) SetApproval(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.SetApprovalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SetApproval(c.Context(), GetUserID(c), id, in.Approved, in.Reason)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "user not found"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "profile violates the role/branch assignment rule"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetApprovalBatch godoc
// @Summary      Approve or reject users in batch
// @Description  Each user is processed independently; failures are reported per ID and never roll back the others.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchApprovalRequest  true  "user_ids, approved flag, optional reason"
// @Success      200   {array}   dto.ApprovalResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/users/approval [put]
func (h *ApprovalHandler) SetApprovalBatch(c *fiber.Ctx) error {
	var in dto.BatchApprovalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.UserIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_ids is required"})
	}
	results := h.uc.SetApprovalBatch(c.Context(), GetUserID(c), in.UserIDs, in.Approved, in.Reason)
	return c.JSON(results)
}

// History godoc
// @Summary      Approval audit trail for one user
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "User ID"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.ApprovalLogResponse
// @Router       /api/admin/users/{id}/approval-history [get]
func (h *ApprovalHandler) History(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.History(c.Context(), id, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
