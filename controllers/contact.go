package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crmtrack-backend/models"
	"crmtrack-backend/store"
	"crmtrack-backend/utils"
)

// AddContactInput defines the expected JSON structure for logging a
// contact event. The customer identity comes from the path.
type AddContactInput struct {
	ContactType string `json:"contactType" binding:"required"`
	Notes       string `json:"notes" binding:"required"`
}

type ContactController struct {
	contacts *store.ContactStore
}

func NewContactController(contacts *store.ContactStore) *ContactController {
	return &ContactController{contacts: contacts}
}

// AddContact logs a contact event against a customer identity. Only the
// identity's format is checked; whether such a customer exists is not.
func (ct *ContactController) AddContact(c *gin.Context) {
	customerID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input AddContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	contactType, err := models.ParseContactType(input.ContactType)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact type")
		return
	}

	contact := ct.contacts.Create(customerID, contactType, input.Notes)
	c.JSON(http.StatusCreated, contact)
}

// GetContactsByCustomer retrieves the contact events for one customer
// identity, oldest first. An unknown identity yields an empty array, not
// an error.
func (ct *ContactController) GetContactsByCustomer(c *gin.Context) {
	customerID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	c.JSON(http.StatusOK, ct.contacts.ListByCustomer(customerID))
}
