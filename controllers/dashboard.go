package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crmtrack-backend/stats"
	"crmtrack-backend/store"
	"crmtrack-backend/utils"
)

// DashboardController serves the read-only overview. Everything is
// recomputed from store snapshots per request; nothing here mutates.
type DashboardController struct {
	stores *store.Stores
}

func NewDashboardController(stores *store.Stores) *DashboardController {
	return &DashboardController{stores: stores}
}

type ActivityItem struct {
	CustomerID  int    `json:"customerId"`
	ContactType string `json:"contactType"`
	Notes       string `json:"notes"`
	When        string `json:"when"` // e.g. "Today", "Yesterday"
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	customers := dc.stores.Customers.List()
	leads := dc.stores.Leads.List()
	contacts := dc.stores.Contacts.List()

	// Recent activity: last 5 contact events, newest first
	now := time.Now()
	recent := make([]ActivityItem, 0, 5)
	for i := len(contacts) - 1; i >= 0 && len(recent) < 5; i-- {
		contact := contacts[i]
		recent = append(recent, ActivityItem{
			CustomerID:  contact.CustomerID,
			ContactType: string(contact.ContactType),
			Notes:       contact.Notes,
			When:        utils.RelativeDayLabel(contact.CreatedAt, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":    stats.TotalCustomers(customers),
		"activeCustomers":   stats.ActiveCustomers(customers),
		"customersByStatus": stats.CustomersByStatus(customers),
		"totalLeads":        stats.TotalLeads(leads),
		"pipelineValue":     stats.PipelineValue(leads),
		"totalContacts":     stats.TotalContacts(contacts),
		"recentActivity":    recent,
	})
}
