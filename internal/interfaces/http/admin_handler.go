package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davinlab/salonlink-api/internal/application/backup"
	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/application/usecase"
)

// AdminHandler handles HQ-only operational routes: backups and API keys.
type AdminHandler struct {
	backupUC *backup.UseCase
	keyUC    *usecase.APIKeyUseCase
}

// NewAdminHandler builds the handler.
func NewAdminHandler(backupUC *backup.UseCase, keyUC *usecase.APIKeyUseCase) *AdminHandler {
	return &AdminHandler{backupUC: backupUC, keyUC: keyUC}
}

// Backup godoc
// @Summary      Full-data XML export
// @Description  Branches, users, customers, recent appointments and invitations. Password hashes are never included.
// @Tags         admin
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {file}  file
// @Router       /api/admin/backup [get]
func (h *AdminHandler) Backup(c *fiber.Ctx) error {
	data, err := h.backupUC.Export(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("salonlink-backup-%s.xml", time.Now().Format("20060102-150405"))
	c.Set("Content-Type", "application/xml")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// CreateAPIKey godoc
// @Summary      Issue an API key
// @Description  Server-to-server credential owned by the calling admin. The key value is returned once here.
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAPIKeyRequest  true  "label"
// @Success      201   {object}  dto.APIKeyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/api-keys [post]
func (h *AdminHandler) CreateAPIKey(c *fiber.Ctx) error {
	var in dto.CreateAPIKeyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "label is required"})
	}
	out, err := h.keyUC.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAPIKeys godoc
// @Summary      List API keys
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.APIKeyResponse
// @Router       /api/admin/api-keys [get]
func (h *AdminHandler) ListAPIKeys(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.keyUC.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RevokeAPIKey godoc
// @Summary      Revoke an API key
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Key ID"
// @Success      204  "revoked"
// @Router       /api/admin/api-keys/{id} [delete]
func (h *AdminHandler) RevokeAPIKey(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.keyUC.Revoke(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
