package apptRepo

import (
	"context"
	"errors"

	"dermacare/models"
)

var (
	// ErrNotFound is returned when no appointment matches the given ID.
	ErrNotFound = errors.New("appointment not found")
	// ErrDuplicateSlot is returned when an insert would violate the
	// one-occupying-appointment-per-slot constraint.
	ErrDuplicateSlot = errors.New("slot already booked")
)

// Repository is the reservation ledger. It owns the uniqueness invariant:
// at most one appointment with an occupying status may exist per
// (doctorId, date, time) triple.
type Repository interface {
	// Create persists a new appointment. It returns ErrDuplicateSlot when
	// an occupying appointment already holds the same slot.
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// FindActiveSlot returns the occupying appointment at the given slot,
	// or (nil, nil) when the slot is free.
	FindActiveSlot(ctx context.Context, doctorID, date, timeLabel string) (*models.Appointment, error)
	// FindActiveByDate returns all occupying appointments for a doctor on
	// a calendar date, in query order.
	FindActiveByDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	// FindByPatient returns a patient's appointments sorted by
	// (date desc, time desc), compared as literal strings.
	FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	// FindByStatus returns all appointments in the given status, same sort.
	FindByStatus(ctx context.Context, status string) ([]models.Appointment, error)
	// FindAll returns every appointment, same sort.
	FindAll(ctx context.Context) ([]models.Appointment, error)
	// FindByDateAndStatus returns appointments on a date in a status,
	// used by the reminder sweep.
	FindByDateAndStatus(ctx context.Context, date, status string) ([]models.Appointment, error)
	// SetStatus transitions an appointment's status. A non-nil adminNote
	// overwrites the stored note. Returns ErrNotFound when the ID is unknown.
	SetStatus(ctx context.Context, id, status string, adminNote *string) error
}
