package scheduling

import (
	"context"

	"dermacare/models"
)

// SlotView is the free/busy breakdown of one doctor's day. AvailableSlots
// preserves the template's declared order.
type SlotView struct {
	TotalSlots     []string `json:"totalSlots"`
	BookedSlots    []string `json:"bookedSlots"`
	AvailableSlots []string `json:"availableSlots"`
}

// BookingRequest carries everything needed to reserve a slot. PatientID
// comes from the verified caller context, never from the request body.
type BookingRequest struct {
	PatientID   string
	DoctorID    string
	Date        string
	Time        string
	Notes       string
	PatientName string
	PhoneNumber string
}

// SlotResolver computes a doctor's free/busy state for a calendar date.
// It is read-only; results may be stale immediately under concurrent
// bookings, so callers re-resolve after writes.
type SlotResolver interface {
	ResolveSlots(ctx context.Context, doctorID, date string) (*SlotView, error)
}

// BookingService orchestrates all writes against the reservation ledger.
type BookingService interface {
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) error
	Decide(ctx context.Context, id, status, adminNote string) error
	ListMine(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListPending(ctx context.Context) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
}
