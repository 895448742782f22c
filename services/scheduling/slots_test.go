package scheduling

import (
	"context"
	"testing"

	"dermacare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mondayDoctor() *models.Doctor {
	return &models.Doctor{
		ID:             "doc-1",
		Name:           "Dr. Achieng",
		Specialization: "Dermatology",
		Availability: []models.DayAvailability{
			{Day: "Monday", TimeSlots: []string{"09:00", "10:00", "11:00"}},
		},
	}
}

func newResolver(ledger *memLedger, doctors ...*models.Doctor) *DefaultSlotResolver {
	return &DefaultSlotResolver{
		Doctors: newMemDoctors(doctors...),
		Ledger:  ledger,
	}
}

func TestResolveSlotsInputValidation(t *testing.T) {
	resolver := newResolver(newMemLedger(), mondayDoctor())
	ctx := context.Background()

	t.Run("Invalid Date", func(t *testing.T) {
		_, err := resolver.ResolveSlots(ctx, "doc-1", "02-06-2025")
		require.Error(t, err)
		assert.Equal(t, CodeInvalidRequest, CodeOf(err))
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		_, err := resolver.ResolveSlots(ctx, "doc-missing", "2025-06-02")
		require.Error(t, err)
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})
}

func TestResolveSlotsEmptyDay(t *testing.T) {
	resolver := newResolver(newMemLedger(), mondayDoctor())

	// 2025-06-03 is a Tuesday; the doctor declared nothing for Tuesdays.
	view, err := resolver.ResolveSlots(context.Background(), "doc-1", "2025-06-03")
	require.NoError(t, err)
	assert.Empty(t, view.TotalSlots)
	assert.Empty(t, view.BookedSlots)
	assert.Empty(t, view.AvailableSlots)
}

func TestResolveSlotsFullDayFree(t *testing.T) {
	resolver := newResolver(newMemLedger(), mondayDoctor())

	view, err := resolver.ResolveSlots(context.Background(), "doc-1", "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, view.TotalSlots)
	assert.Empty(t, view.BookedSlots)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, view.AvailableSlots)
}

func TestResolveSlotsAfterBooking(t *testing.T) {
	ledger := newMemLedger()
	resolver := newResolver(ledger, mondayDoctor())
	svc := &DefaultBookingService{Ledger: ledger, Locks: NewMemorySlotLocker(), Log: zap.NewNop()}
	ctx := context.Background()

	appt, err := svc.Book(ctx, BookingRequest{PatientID: "pat-1", DoctorID: "doc-1", Date: "2025-06-02", Time: "10:00"})
	require.NoError(t, err)

	view, err := resolver.ResolveSlots(ctx, "doc-1", "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, view.BookedSlots)
	assert.Equal(t, []string{"09:00", "11:00"}, view.AvailableSlots)

	// Rejecting the appointment frees the slot again.
	require.NoError(t, svc.Decide(ctx, appt.ID, models.StatusRejected, ""))
	view, err = resolver.ResolveSlots(ctx, "doc-1", "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, view.AvailableSlots)
}

// Booked labels outside the declared template are tolerated: they show up
// in bookedSlots but never disturb the available subsequence.
func TestResolveSlotsOutOfTemplateBooking(t *testing.T) {
	ledger := newMemLedger()
	resolver := newResolver(ledger, mondayDoctor())
	ctx := context.Background()

	require.NoError(t, ledger.Create(ctx, &models.Appointment{
		ID: "a-1", PatientID: "pat-1", DoctorID: "doc-1",
		Date: "2025-06-02", Time: "23:30", Status: models.StatusPending,
	}))

	view, err := resolver.ResolveSlots(ctx, "doc-1", "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"23:30"}, view.BookedSlots)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, view.AvailableSlots)
}

// Available order is the template order, not a re-sort of what is left.
func TestResolveSlotsPreservesTemplateOrder(t *testing.T) {
	doctor := &models.Doctor{
		ID:   "doc-2",
		Name: "Dr. Otieno",
		Availability: []models.DayAvailability{
			{Day: "Monday", TimeSlots: []string{"14:00", "09:00", "11:00"}},
		},
	}
	ledger := newMemLedger()
	resolver := newResolver(ledger, doctor)
	ctx := context.Background()

	require.NoError(t, ledger.Create(ctx, &models.Appointment{
		ID: "a-1", PatientID: "pat-1", DoctorID: "doc-2",
		Date: "2025-06-02", Time: "09:00", Status: models.StatusApproved,
	}))

	view, err := resolver.ResolveSlots(ctx, "doc-2", "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "09:00", "11:00"}, view.TotalSlots)
	assert.Equal(t, []string{"14:00", "11:00"}, view.AvailableSlots)
}
