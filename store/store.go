// Package store holds the live CRM dataset. Everything lives in process
// memory for the lifetime of the process; a restart starts from scratch.
package store

import "errors"

// ErrNotFound reports that no live record matches the requested identity.
var ErrNotFound = errors.New("record not found")

// Stores bundles one store per entity type so the handler layer can take
// the whole dataset as a single injected dependency. Build one per process
// (or per test); two containers share nothing.
type Stores struct {
	Customers *CustomerStore
	Leads     *LeadStore
	Contacts  *ContactStore
}

func New() *Stores {
	return &Stores{
		Customers: NewCustomerStore(),
		Leads:     NewLeadStore(),
		Contacts:  NewContactStore(),
	}
}
