package models

const defaultDoctorImageURL = "https://via.placeholder.com/150"

// DayAvailability declares the bookable time labels a doctor offers on one
// weekday. The slot order is canonical and preserved end to end.
type DayAvailability struct {
	Day       string   `bson:"day" json:"day"`
	TimeSlots []string `bson:"timeSlots" json:"timeSlots"`
}

// Doctor is a provider profile with its weekly availability template
// embedded. The template is read-only to the scheduling core.
type Doctor struct {
	ID             string            `bson:"id" json:"id"`
	Name           string            `bson:"name" json:"name"`
	Specialization string            `bson:"specialization" json:"specialization"`
	Qualification  string            `bson:"qualification,omitempty" json:"qualification"`
	Experience     int               `bson:"experience,omitempty" json:"experience"`
	About          string            `bson:"about,omitempty" json:"about"`
	ImageURL       string            `bson:"imageUrl,omitempty" json:"imageUrl"`
	Rating         float64           `bson:"rating,omitempty" json:"rating"`
	ReviewsCount   int               `bson:"reviewsCount,omitempty" json:"reviewsCount"`
	HourlyRate     float64           `bson:"hourlyRate,omitempty" json:"hourlyRate"`
	Availability   []DayAvailability `bson:"availability,omitempty" json:"availability"`
}

// ApplyDefaults fills display fields that legacy documents may lack.
// Defaults are decided here, once, rather than at each read site.
func (d *Doctor) ApplyDefaults() {
	if d.ImageURL == "" {
		d.ImageURL = defaultDoctorImageURL
	}
	if d.Rating == 0 {
		d.Rating = 5.0
	}
	if d.Availability == nil {
		d.Availability = []DayAvailability{}
	}
}

// SlotsFor returns the declared time labels for the given weekday name
// (e.g. "Monday"). A weekday without an entry yields an empty slice.
func (d *Doctor) SlotsFor(day string) []string {
	for _, avail := range d.Availability {
		if avail.Day == day {
			return avail.TimeSlots
		}
	}
	return nil
}

// DoctorSummary is the denormalized doctor reference embedded in
// appointment views. Resolved is false when the referenced doctor no
// longer exists, so callers see the dangling reference instead of a
// silent placeholder.
type DoctorSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Resolved       bool   `json:"resolved"`
}
