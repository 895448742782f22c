package handlers

import (
	"fmt"
	"net/http"

	doctorRepo "dermacare/database/repository/doctor"
	"dermacare/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the administrative review endpoints.
//
// These routes carry no role check in the system this replaces. That gap
// is tracked as an open product decision; the route grouping keeps the fix
// to a one-line middleware addition.
type AdminHandler struct {
	Svc     scheduling.BookingService
	Doctors doctorRepo.Repository
	Log     *zap.Logger
}

func NewAdminHandler(svc scheduling.BookingService, doctors doctorRepo.Repository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Doctors: doctors, Log: logger}
}

// PendingAppointmentsHandler lists appointments awaiting a decision.
func (h *AdminHandler) PendingAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListPending(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments": buildViews(c.Request.Context(), h.Doctors, appts),
	})
}

// AllAppointmentsHandler lists the full appointment history.
func (h *AdminHandler) AllAppointmentsHandler(c *gin.Context) {
	appts, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments": buildViews(c.Request.Context(), h.Doctors, appts),
	})
}

type decisionInput struct {
	Status    string `json:"status"`
	AdminNote string `json:"adminNote"`
}

// UpdateAppointmentStatusHandler applies an approve/reject decision.
func (h *AdminHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var input decisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeServiceError(c, scheduling.ErrInvalidRequest("invalid request body"))
		return
	}

	if err := h.Svc.Decide(c.Request.Context(), id, input.Status, input.AdminNote); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Appointment %s successfully", input.Status),
	})
}
