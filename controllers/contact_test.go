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

func TestAddContact(t *testing.T) {
	s := store.New()
	s.Customers.Create("Anna", "a@x.com", "TechCorp", "555-1", models.CustomerStatusActive)
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/customers/1/contacts", gin.H{
		"contactType": "email", "notes": "inquiry",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, float64(1), body["customerId"])
	assert.Equal(t, "email", body["contactType"])
}

func TestAddContactUnknownCustomerAccepted(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	// Existence of the customer is deliberately not checked.
	w := doJSON(t, r, http.MethodPost, "/api/customers/99/contacts", gin.H{
		"contactType": "meeting", "notes": "site visit",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(99), decodeBody(t, w)["customerId"])
}

func TestAddContactMissingNotes(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/customers/1/contacts", gin.H{
		"contactType": "email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, s.Contacts.Count())
}

func TestAddContactInvalidType(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/api/customers/1/contacts", gin.H{
		"contactType": "fax", "notes": "paper trail",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, s.Contacts.Count())
}

func TestGetContactsByCustomer(t *testing.T) {
	s := store.New()
	s.Contacts.Create(1, models.ContactTypeEmail, "inquiry")
	s.Contacts.Create(1, models.ContactTypePhone, "follow-up")
	s.Contacts.Create(2, models.ContactTypeMeeting, "other customer")
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/customers/1/contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "inquiry", list[0]["notes"])
	assert.Equal(t, "follow-up", list[1]["notes"])
}

func TestGetContactsUnknownCustomerIsEmptyList(t *testing.T) {
	s := store.New()
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/customers/99/contacts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
