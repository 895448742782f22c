package cron

import (
	"context"
	"time"

	apptRepo "dermacare/database/repository/appointment"
	doctorRepo "dermacare/database/repository/doctor"
	"dermacare/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartReminderJob schedules the daily sweep over next-day approved
// appointments. The actual notification transport is owned by an external
// service; this job resolves and logs the dispatch list.
func StartReminderJob(schedule string, ledger apptRepo.Repository, doctors doctorRepo.Repository, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		sendReminders(ledger, doctors, logger)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("reminder job scheduled", zap.String("schedule", schedule))
	return c, nil
}

func sendReminders(ledger apptRepo.Repository, doctors doctorRepo.Repository, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	appts, err := ledger.FindByDateAndStatus(ctx, tomorrow, models.StatusApproved)
	if err != nil {
		logger.Error("reminder sweep failed", zap.Error(err))
		return
	}

	for _, appt := range appts {
		doctorName := appt.DoctorID
		if d, err := doctors.GetByID(ctx, appt.DoctorID); err == nil {
			doctorName = d.Name
		}
		logger.Info("appointment reminder dispatched",
			zap.String("appointmentId", appt.ID),
			zap.String("patientId", appt.PatientID),
			zap.String("doctor", doctorName),
			zap.String("date", appt.Date),
			zap.String("time", appt.Time),
		)
	}
	logger.Info("reminder sweep completed",
		zap.String("date", tomorrow),
		zap.Int("count", len(appts)),
	)
}
