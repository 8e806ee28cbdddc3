package store

import (
	"sync"
	"time"

	"crmtrack-backend/models"
)

// ContactStore owns the contact-event log. Contacts are append-only: they
// can be listed but never updated or deleted.
type ContactStore struct {
	mu       sync.Mutex
	contacts []models.Contact
	nextID   int
	now      func() time.Time
}

func NewContactStore() *ContactStore {
	return &ContactStore{nextID: 1, now: time.Now}
}

// Create logs a contact event against the given customer identity, stamped
// with the current time. The identity is recorded verbatim; whether such a
// customer exists is not checked, so deleting a customer later leaves its
// contact events orphaned.
func (s *ContactStore) Create(customerID int, contactType models.ContactType, notes string) models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact := models.Contact{
		ID:          s.nextID,
		CustomerID:  customerID,
		ContactType: contactType,
		Notes:       notes,
		CreatedAt:   s.now(),
	}
	s.nextID++
	s.contacts = append(s.contacts, contact)
	return contact
}

// ListByCustomer returns the contact events recorded against one customer
// identity, oldest first. No matches yields an empty slice, not an error.
func (s *ContactStore) ListByCustomer(customerID int) []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Contact, 0)
	for _, contact := range s.contacts {
		if contact.CustomerID == customerID {
			out = append(out, contact)
		}
	}
	return out
}

// List returns every contact event in creation order, as a copy.
func (s *ContactStore) List() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Count reports the number of logged contact events.
func (s *ContactStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts)
}
