package scheduling

import (
	"context"
	"errors"
	"time"

	apptRepo "dermacare/database/repository/appointment"
	doctorRepo "dermacare/database/repository/doctor"
)

// DefaultSlotResolver derives a doctor's free/busy state for one day from
// the weekly availability template and the occupying appointments on that
// date.
type DefaultSlotResolver struct {
	Doctors doctorRepo.Repository
	Ledger  apptRepo.Repository
}

func (r *DefaultSlotResolver) ResolveSlots(ctx context.Context, doctorID, date string) (*SlotView, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidRequest("date must be a valid YYYY-MM-DD date")
	}
	weekday := day.Weekday().String()

	doctor, err := r.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, ErrNotFound("doctor not found")
		}
		return nil, ErrUnavailable("could not load doctor")
	}

	total := doctor.SlotsFor(weekday)

	active, err := r.Ledger.FindActiveByDate(ctx, doctorID, date)
	if err != nil {
		return nil, ErrUnavailable("could not load appointments")
	}
	booked := make([]string, 0, len(active))
	taken := make(map[string]bool, len(active))
	for _, a := range active {
		booked = append(booked, a.Time)
		taken[a.Time] = true
	}

	// Stable filter: availableSlots keeps the template order. Booked labels
	// that are not in the template are tolerated and simply ignored here.
	available := make([]string, 0, len(total))
	for _, slot := range total {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	return &SlotView{
		TotalSlots:     append([]string{}, total...),
		BookedSlots:    booked,
		AvailableSlots: available,
	}, nil
}
