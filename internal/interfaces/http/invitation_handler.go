package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/application/invitation"
	"github.com/davinlab/salonlink-api/internal/domain"
)

// InvitationHandler handles invitation issue/list/revoke (HQ and OWNER).
type InvitationHandler struct {
	uc *invitation.UseCase
}

// NewInvitationHandler builds the handler.
func NewInvitationHandler(uc *invitation.UseCase) *InvitationHandler {
	return &InvitationHandler{uc: uc}
}

// Create godoc
// @Summary      Issue an invitation
// @Description  HQ invites owners (branch_id required); owners invite staff into their own branch.
// @Tags         invitations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvitationRequest  true  "email, role, branch_id (HQ only)"
// @Success      201   {object}  dto.InvitationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invitations [post]
func (h *InvitationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvitationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and role are required"})
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput, domain.ErrInvalidRole:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid invitation parameters"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "this role may not issue that invitation"})
		case domain.ErrBranchNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "BRANCH_NOT_FOUND", Message: "branch not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List invitations
// @Description  HQ sees every invitation; owners see their branch's.
// @Tags         invitations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}   dto.InvitationResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/invitations [get]
func (h *InvitationHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.Context(), GetActor(c), page)
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "this role may not list invitations"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Revoke an unused invitation
// @Tags         invitations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Invitation ID"
// @Success      204  "revoked"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invitations/{id} [delete]
func (h *InvitationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		switch err {
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "only HQ may revoke invitations"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invitation not found"})
		case domain.ErrInvitationUsed:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVITATION_USED", Message: "a redeemed invitation cannot be revoked"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
