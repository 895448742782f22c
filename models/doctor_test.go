package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotsFor(t *testing.T) {
	d := Doctor{
		Availability: []DayAvailability{
			{Day: "Monday", TimeSlots: []string{"09:00", "10:00"}},
			{Day: "Friday", TimeSlots: []string{"14:00"}},
		},
	}

	assert.Equal(t, []string{"09:00", "10:00"}, d.SlotsFor("Monday"))
	assert.Equal(t, []string{"14:00"}, d.SlotsFor("Friday"))
	assert.Empty(t, d.SlotsFor("Sunday"))
}

func TestApplyDefaults(t *testing.T) {
	d := Doctor{ID: "doc-1", Name: "Dr. Achieng"}
	d.ApplyDefaults()

	assert.NotEmpty(t, d.ImageURL)
	assert.Equal(t, 5.0, d.Rating)
	assert.NotNil(t, d.Availability)

	// Existing values survive.
	d2 := Doctor{ImageURL: "https://example.com/p.png", Rating: 3.5}
	d2.ApplyDefaults()
	assert.Equal(t, "https://example.com/p.png", d2.ImageURL)
	assert.Equal(t, 3.5, d2.Rating)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, IsOccupying(StatusPending))
	assert.True(t, IsOccupying(StatusApproved))
	assert.False(t, IsOccupying(StatusRejected))
	assert.False(t, IsOccupying(StatusCancelled))

	assert.True(t, IsDecision(StatusApproved))
	assert.True(t, IsDecision(StatusRejected))
	assert.False(t, IsDecision(StatusPending))
	assert.False(t, IsDecision(StatusCancelled))
}
