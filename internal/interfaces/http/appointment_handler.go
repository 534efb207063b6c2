package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davinlab/salonlink-api/internal/application/dto"
	"github.com/davinlab/salonlink-api/internal/application/usecase"
)

// AppointmentHandler handles branch-scoped appointment routes.
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler builds the handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create godoc
// @Summary      Book an appointment
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "appointment data; price is a decimal string"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.CustomerID == "" || in.Service == "" || in.Price == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id, service and price are required"})
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return customerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List appointments in a date window
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        from       query  string  false  "YYYY-MM-DD, defaults to today"
// @Param        to         query  string  false  "YYYY-MM-DD exclusive, defaults to from+1d"
// @Param        branch_id  query  string  false  "Branch filter (HQ only)"
// @Param        limit      query  int     false  "Limit"   default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.AppointmentResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	in := dto.ListAppointmentsRequest{
		PageRequest: dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)},
		BranchID:    c.Query("branch_id"),
		From:        c.Query("from"),
		To:          c.Query("to"),
	}
	out, err := h.uc.List(c.Context(), GetActor(c), in)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get an appointment by ID
// @Tags         appointments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Appointment ID"
// @Success      200  {object}  dto.AppointmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(c.Context(), GetActor(c), id)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update an appointment
// @Description  Covers status transitions (done, cancelled, no_show) as well as rescheduling.
// @Tags         appointments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Appointment ID"
// @Param        body  body  dto.UpdateAppointmentRequest  true  "appointment data"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(out)
}
