// Package stats computes derived summaries over store snapshots. Every
// function is pure and recomputed per call; nothing is cached or
// maintained incrementally.
package stats

import "crmtrack-backend/models"

func TotalCustomers(customers []models.Customer) int {
	return len(customers)
}

func ActiveCustomers(customers []models.Customer) int {
	count := 0
	for _, customer := range customers {
		if customer.Status == models.CustomerStatusActive {
			count++
		}
	}
	return count
}

// CustomersByStatus counts customers per status. Every status appears in
// the result, zero-valued statuses included, so dashboards render a full
// breakdown.
func CustomersByStatus(customers []models.Customer) map[models.CustomerStatus]int {
	counts := map[models.CustomerStatus]int{
		models.CustomerStatusProspect: 0,
		models.CustomerStatusActive:   0,
		models.CustomerStatusInactive: 0,
	}
	for _, customer := range customers {
		counts[customer.Status]++
	}
	return counts
}

func TotalLeads(leads []models.Lead) int {
	return len(leads)
}

// PipelineValue sums the estimated value of every live lead; 0 when there
// are none.
func PipelineValue(leads []models.Lead) float64 {
	var total float64
	for _, lead := range leads {
		total += lead.Value
	}
	return total
}

func TotalContacts(contacts []models.Contact) int {
	return len(contacts)
}
