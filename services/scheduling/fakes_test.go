package scheduling

import (
	"context"
	"sort"
	"sync"

	apptRepo "dermacare/database/repository/appointment"
	doctorRepo "dermacare/database/repository/doctor"
	"dermacare/models"
)

// memLedger is an in-memory stand-in for the Mongo ledger. It enforces the
// same partial uniqueness the collection index does, so service tests
// exercise both conflict paths.
type memLedger struct {
	mu    sync.Mutex
	appts []*models.Appointment
}

func newMemLedger() *memLedger {
	return &memLedger{}
}

func (m *memLedger) Create(ctx context.Context, appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if models.IsOccupying(appt.Status) {
		for _, a := range m.appts {
			if a.DoctorID == appt.DoctorID && a.Date == appt.Date && a.Time == appt.Time && models.IsOccupying(a.Status) {
				return apptRepo.ErrDuplicateSlot
			}
		}
	}
	cp := *appt
	m.appts = append(m.appts, &cp)
	return nil
}

func (m *memLedger) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apptRepo.ErrNotFound
}

func (m *memLedger) FindActiveSlot(ctx context.Context, doctorID, date, timeLabel string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Date == date && a.Time == timeLabel && models.IsOccupying(a.Status) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memLedger) FindActiveByDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Date == date && models.IsOccupying(a.Status) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memLedger) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	sortLikeStore(out)
	return out, nil
}

func (m *memLedger) FindByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.Status == status {
			out = append(out, *a)
		}
	}
	sortLikeStore(out)
	return out, nil
}

func (m *memLedger) FindAll(ctx context.Context) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Appointment, 0, len(m.appts))
	for _, a := range m.appts {
		out = append(out, *a)
	}
	sortLikeStore(out)
	return out, nil
}

func (m *memLedger) FindByDateAndStatus(ctx context.Context, date, status string) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.Date == date && a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memLedger) SetStatus(ctx context.Context, id, status string, adminNote *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.ID == id {
			a.Status = status
			if adminNote != nil {
				a.AdminNote = *adminNote
			}
			return nil
		}
	}
	return apptRepo.ErrNotFound
}

// sortLikeStore replicates the store's sort: date desc then time desc,
// compared as literal strings.
func sortLikeStore(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date > appts[j].Date
		}
		return appts[i].Time > appts[j].Time
	})
}

// memDoctors is a fixed doctor catalog.
type memDoctors struct {
	doctors map[string]*models.Doctor
}

func newMemDoctors(doctors ...*models.Doctor) *memDoctors {
	m := &memDoctors{doctors: make(map[string]*models.Doctor)}
	for _, d := range doctors {
		m.doctors[d.ID] = d
	}
	return m
}

func (m *memDoctors) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memDoctors) GetAll(ctx context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range m.doctors {
		out = append(out, *d)
	}
	return out, nil
}
