package handlers

import (
	"net/http"

	doctorRepo "dermacare/database/repository/doctor"
	"dermacare/middleware"
	"dermacare/models"
	"dermacare/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the patient-facing booking endpoints.
type BookingHandler struct {
	Svc     scheduling.BookingService
	Doctors doctorRepo.Repository
	Log     *zap.Logger
}

func NewBookingHandler(svc scheduling.BookingService, doctors doctorRepo.Repository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Doctors: doctors, Log: logger}
}

type bookInput struct {
	DoctorID string `json:"doctorId"`
	// Legacy clients send the doctor reference under this name.
	DermatologistID string `json:"dermatologistId"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Notes           string `json:"notes"`
	PatientName     string `json:"patientName"`
	PhoneNumber     string `json:"phoneNumber"`
}

// BookAppointmentHandler reserves a slot for the authenticated patient.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	var input bookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeServiceError(c, scheduling.ErrInvalidRequest("invalid request body"))
		return
	}
	doctorID := input.DoctorID
	if doctorID == "" {
		doctorID = input.DermatologistID
	}

	appt, err := h.Svc.Book(c.Request.Context(), scheduling.BookingRequest{
		PatientID:   middleware.PatientID(c),
		DoctorID:    doctorID,
		Date:        input.Date,
		Time:        input.Time,
		Notes:       input.Notes,
		PatientName: input.PatientName,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Appointment booked successfully",
		"appointment": appt,
	})
}

// MyAppointmentsHandler lists the caller's appointments. Anonymous callers
// get an empty list, matching the legacy contract.
func (h *BookingHandler) MyAppointmentsHandler(c *gin.Context) {
	patientID := middleware.PatientID(c)
	if patientID == "" {
		c.JSON(http.StatusOK, gin.H{"appointments": []models.AppointmentView{}})
		return
	}

	appts, err := h.Svc.ListMine(c.Request.Context(), patientID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments": buildViews(c.Request.Context(), h.Doctors, appts),
	})
}

// CancelAppointmentHandler transitions an appointment to cancelled.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Cancel(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Appointment cancelled",
	})
}
