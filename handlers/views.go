package handlers

import (
	"context"
	"errors"

	doctorRepo "dermacare/database/repository/doctor"
	"dermacare/models"
)

// buildViews enriches appointments with their doctor summaries. A doctor
// that no longer exists is surfaced as an unresolved reference rather than
// substituted with a placeholder name.
func buildViews(ctx context.Context, doctors doctorRepo.Repository, appts []models.Appointment) []models.AppointmentView {
	views := make([]models.AppointmentView, 0, len(appts))
	cache := make(map[string]models.DoctorSummary)

	for _, a := range appts {
		summary, ok := cache[a.DoctorID]
		if !ok {
			summary = resolveDoctor(ctx, doctors, a.DoctorID)
			cache[a.DoctorID] = summary
		}
		views = append(views, models.AppointmentView{Appointment: a, Doctor: summary})
	}
	return views
}

func resolveDoctor(ctx context.Context, doctors doctorRepo.Repository, id string) models.DoctorSummary {
	d, err := doctors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return models.DoctorSummary{ID: id, Resolved: false}
		}
		// Store trouble: treat as unresolved for this response.
		return models.DoctorSummary{ID: id, Resolved: false}
	}
	return models.DoctorSummary{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
		Resolved:       true,
	}
}
