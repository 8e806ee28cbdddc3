package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crmtrack-backend/models"
	"crmtrack-backend/store"
)

func TestCreateCustomer(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name": "Anna", "email": "a@x.com", "company": "TechCorp", "phone": "555-1", "status": "active",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "active", body["status"])
}

func TestCreateCustomerDefaultsStatus(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name": "Max", "email": "m@x.com", "company": "DesignCo", "phone": "555-2",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "prospect", decodeBody(t, w)["status"])
}

func TestCreateCustomerMissingFieldIsRejected(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name": "Anna", "email": "a@x.com", "company": "TechCorp",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, s.Customers.Count())
}

func TestCreateCustomerInvalidStatusIsRejected(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/customers", gin.H{
		"name": "Anna", "email": "a@x.com", "company": "TechCorp", "phone": "555-1", "status": "archived",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, s.Customers.Count())
}

func TestGetCustomer(t *testing.T) {
	s := store.New()
	created := s.Customers.Create("Anna", "a@x.com", "TechCorp", "555-1", models.CustomerStatusActive)
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.Name, decodeBody(t, w)["name"].(string))

	w = doJSON(t, r, http.MethodGet, "/api/customers/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/customers/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCustomersInCreationOrder(t *testing.T) {
	s := store.New()
	s.Customers.Create("A", "a@x.com", "Co", "1", "")
	s.Customers.Create("B", "b@x.com", "Co", "2", "")
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0]["name"])
	assert.Equal(t, "B", list[1]["name"])
}

func TestUpdateCustomer(t *testing.T) {
	s := store.New()
	s.Customers.Create("Anna", "a@x.com", "TechCorp", "555-1", models.CustomerStatusProspect)
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPut, "/api/customers/1", gin.H{
		"name": "Anna B", "email": "ab@x.com", "company": "TechCorp GmbH", "phone": "555-9", "status": "active",
	})
	require.Equal(t, http.StatusOK, w.Code)

	got, err := s.Customers.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Anna B", got.Name)
	assert.Equal(t, models.CustomerStatusActive, got.Status)
}

func TestUpdateCustomerRequiresAllFields(t *testing.T) {
	s := store.New()
	s.Customers.Create("Anna", "a@x.com", "TechCorp", "555-1", models.CustomerStatusProspect)
	r := newTestRouter(s)

	// Partial updates are not supported; the full record is required.
	w := doJSON(t, r, http.MethodPut, "/api/customers/1", gin.H{"name": "Anna B"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got, err := s.Customers.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.Name)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPut, "/api/customers/7", gin.H{
		"name": "N", "email": "n@x.com", "company": "Co", "phone": "1", "status": "inactive",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCustomer(t *testing.T) {
	s := store.New()
	s.Customers.Create("Anna", "a@x.com", "TechCorp", "555-1", models.CustomerStatusActive)
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodDelete, "/api/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Customer deleted successfully", decodeBody(t, w)["message"])

	// Deleting again reports not-found.
	w = doJSON(t, r, http.MethodDelete, "/api/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
