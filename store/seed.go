package store

import "crmtrack-backend/models"

// SeedSampleData loads the demo dataset so a fresh process has something
// to show: three customers across all three statuses and two leads.
func SeedSampleData(s *Stores) {
	s.Customers.Create("John Doe", "john@example.com", "Acme Corp", "555-0001", models.CustomerStatusActive)
	s.Customers.Create("Jane Smith", "jane@example.com", "Tech Solutions", "555-0002", models.CustomerStatusProspect)
	s.Customers.Create("Bob Wilson", "bob@example.com", "Global Industries", "555-0003", models.CustomerStatusInactive)

	s.Leads.Create("Alice Brown", "alice@example.com", "StartUp Inc", 50000, "Website")
	s.Leads.Create("Charlie Davis", "charlie@example.com", "Enterprise Ltd", 100000, "Referral")
}
