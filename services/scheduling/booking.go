package scheduling

import (
	"context"
	"errors"
	"time"

	apptRepo "dermacare/database/repository/appointment"
	"dermacare/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the only writer against the reservation ledger.
type DefaultBookingService struct {
	Ledger apptRepo.Repository
	Locks  SlotLocker
	Log    *zap.Logger
}

func slotKey(doctorID, date, timeLabel string) string {
	return doctorID + "|" + date + "|" + timeLabel
}

// Book reserves a slot for a patient. The conflict check and insert run
// under a per-slot lock so two racing callers cannot both observe the slot
// as free; the ledger's unique index catches anything that slips past.
func (s *DefaultBookingService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if req.PatientID == "" {
		return nil, ErrUnauthenticated("authentication required")
	}
	if req.DoctorID == "" || req.Date == "" || req.Time == "" {
		return nil, ErrInvalidRequest("doctorId, date and time are required")
	}

	release, err := s.Locks.Acquire(ctx, slotKey(req.DoctorID, req.Date, req.Time))
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := s.Ledger.FindActiveSlot(ctx, req.DoctorID, req.Date, req.Time)
	if err != nil {
		return nil, ErrUnavailable("could not check slot occupancy")
	}
	if existing != nil {
		return nil, ErrConflict("slot already booked")
	}

	now := time.Now().UTC()
	appt := &models.Appointment{
		ID:          uuid.NewString(),
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Date:        req.Date,
		Time:        req.Time,
		Status:      models.StatusPending,
		Notes:       req.Notes,
		PatientName: req.PatientName,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Ledger.Create(ctx, appt); err != nil {
		if errors.Is(err, apptRepo.ErrDuplicateSlot) {
			return nil, ErrConflict("slot already booked")
		}
		return nil, ErrUnavailable("could not create appointment")
	}

	s.Log.Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("doctorId", appt.DoctorID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)
	return appt, nil
}

// Cancel sets the appointment to cancelled. It is idempotent: cancelling
// an already-cancelled appointment succeeds.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	if _, err := s.getByID(ctx, id); err != nil {
		return err
	}
	if err := s.Ledger.SetStatus(ctx, id, models.StatusCancelled, nil); err != nil {
		return s.mapLedgerErr(err)
	}
	s.Log.Info("appointment cancelled", zap.String("appointmentId", id))
	return nil
}

// Decide applies an admin approval or rejection. Re-deciding an
// already-decided appointment overwrites the previous decision.
func (s *DefaultBookingService) Decide(ctx context.Context, id, status, adminNote string) error {
	if !models.IsDecision(status) {
		return ErrInvalidRequest("status must be approved or rejected")
	}
	if _, err := s.getByID(ctx, id); err != nil {
		return err
	}
	var notePtr *string
	if adminNote != "" {
		notePtr = &adminNote
	}
	if err := s.Ledger.SetStatus(ctx, id, status, notePtr); err != nil {
		return s.mapLedgerErr(err)
	}
	s.Log.Info("appointment decided",
		zap.String("appointmentId", id),
		zap.String("status", status),
	)
	return nil
}

func (s *DefaultBookingService) ListMine(ctx context.Context, patientID string) ([]models.Appointment, error) {
	appts, err := s.Ledger.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, ErrUnavailable("could not list appointments")
	}
	return appts, nil
}

func (s *DefaultBookingService) ListPending(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Ledger.FindByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, ErrUnavailable("could not list appointments")
	}
	return appts, nil
}

func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Ledger.FindAll(ctx)
	if err != nil {
		return nil, ErrUnavailable("could not list appointments")
	}
	return appts, nil
}

func (s *DefaultBookingService) getByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Ledger.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapLedgerErr(err)
	}
	return appt, nil
}

func (s *DefaultBookingService) mapLedgerErr(err error) error {
	if errors.Is(err, apptRepo.ErrNotFound) {
		return ErrNotFound("appointment not found")
	}
	return ErrUnavailable("appointment store unavailable")
}
