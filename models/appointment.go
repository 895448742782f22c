package models

import "time"

// Appointment status lifecycle. An appointment starts as StatusPending and
// only ever transitions status; records are never deleted.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

// OccupyingStatuses are the statuses that hold a slot against double
// booking. Rejected and cancelled appointments free the slot.
var OccupyingStatuses = []string{StatusPending, StatusApproved}

// IsOccupying reports whether the status counts against the
// one-appointment-per-slot invariant.
func IsOccupying(status string) bool {
	return status == StatusPending || status == StatusApproved
}

// IsDecision reports whether the status is a valid admin decision.
func IsDecision(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// Appointment represents one reservation of a doctor's slot.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	DoctorID    string    `bson:"doctorId" json:"doctorId"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string    `bson:"time" json:"time"` // time label from the doctor's template, e.g. "10:00"
	Status      string    `bson:"status" json:"status"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	AdminNote   string    `bson:"adminNote,omitempty" json:"adminNote,omitempty"`
	PatientName string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentView is an appointment enriched with its doctor summary for
// list responses.
type AppointmentView struct {
	Appointment
	Doctor DoctorSummary `json:"doctor"`
}
