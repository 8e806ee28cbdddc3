package store

import (
	"sync"

	"crmtrack-backend/models"
)

// LeadStore owns the lead collection. Its counter is independent of the
// customer store; both can hand out the same numbers.
type LeadStore struct {
	mu     sync.Mutex
	leads  []models.Lead
	nextID int
}

func NewLeadStore() *LeadStore {
	return &LeadStore{nextID: 1}
}

// Create appends a new lead with status fixed to new. Value is stored as
// given; negative values are not rejected here.
func (s *LeadStore) Create(name, email, company string, value float64, source string) models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := models.Lead{
		ID:      s.nextID,
		Name:    name,
		Email:   email,
		Company: company,
		Value:   value,
		Source:  source,
		Status:  models.LeadStatusNew,
	}
	s.nextID++
	s.leads = append(s.leads, lead)
	return lead
}

// List returns every live lead in creation order, as a copy.
func (s *LeadStore) List() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// GetByID returns the lead with the given identity, or ErrNotFound.
func (s *LeadStore) GetByID(id int) (models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, lead := range s.leads {
		if lead.ID == id {
			return lead, nil
		}
	}
	return models.Lead{}, ErrNotFound
}

// Delete removes the matching lead, or reports ErrNotFound. Leads have no
// update operation; correcting one means delete and recreate.
func (s *LeadStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID == id {
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count reports the number of live leads.
func (s *LeadStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads)
}
