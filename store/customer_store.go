package store

import (
	"sync"

	"crmtrack-backend/models"
)

// CustomerStore owns the customer collection and its identity counter.
// Records are kept in creation order. Identities start at 1, are never
// reused, and a delete never rewinds the counter. The mutex serializes
// access since the HTTP shell serves requests concurrently.
type CustomerStore struct {
	mu        sync.Mutex
	customers []models.Customer
	nextID    int
}

func NewCustomerStore() *CustomerStore {
	return &CustomerStore{nextID: 1}
}

// Create appends a new customer and returns it with its assigned identity.
// An empty status falls back to prospect. Field contents are stored as
// given; presence checks belong to the handler layer.
func (s *CustomerStore) Create(name, email, company, phone string, status models.CustomerStatus) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status == "" {
		status = models.CustomerStatusProspect
	}
	customer := models.Customer{
		ID:      s.nextID,
		Name:    name,
		Email:   email,
		Company: company,
		Phone:   phone,
		Status:  status,
	}
	s.nextID++
	s.customers = append(s.customers, customer)
	return customer
}

// List returns every live customer in creation order. The slice is a
// copy; callers cannot reach store state through it.
func (s *CustomerStore) List() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// GetByID returns the customer with the given identity, or ErrNotFound.
// Linear scan; the dataset is expected to stay small.
func (s *CustomerStore) GetByID(id int) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, customer := range s.customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// Update overwrites all five mutable fields of the matching customer and
// returns the updated record. There are no partial updates; callers must
// supply the full record.
func (s *CustomerStore) Update(id int, name, email, company, phone string, status models.CustomerStatus) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].Name = name
			s.customers[i].Email = email
			s.customers[i].Company = company
			s.customers[i].Phone = phone
			s.customers[i].Status = status
			return s.customers[i], nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// Delete removes the matching customer, or reports ErrNotFound. Contact
// records referencing the identity are left in place.
func (s *CustomerStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count reports the number of live customers.
func (s *CustomerStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.customers)
}
