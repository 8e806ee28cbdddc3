package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"crmtrack-backend/store"
)

// newTestRouter wires all controllers against a fresh store container,
// mirroring the route layout in routes.SetupRouter. The notifier and
// archiver are left unconfigured.
func newTestRouter(s *store.Stores) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	customerController := NewCustomerController(s.Customers)
	leadController := NewLeadController(s.Leads, nil)
	contactController := NewContactController(s.Contacts)
	dashboardController := NewDashboardController(s)
	archiveController := NewArchiveController(s, nil)

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id", customerController.UpdateCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
			customers.POST("/:id/contacts", contactController.AddContact)
			customers.GET("/:id/contacts", contactController.GetContactsByCustomer)
		}

		leads := api.Group("/leads")
		{
			leads.POST("", leadController.CreateLead)
			leads.GET("", leadController.GetLeads)
			leads.GET("/:id", leadController.GetLead)
			leads.DELETE("/:id", leadController.DeleteLead)
		}

		api.GET("/dashboard", dashboardController.GetDashboardOverview)
		api.POST("/archive/export", archiveController.Export)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
