package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crmtrack-backend/services"
	"crmtrack-backend/store"
	"crmtrack-backend/utils"
)

// CreateLeadInput defines the expected JSON structure for creating a
// lead. Value is a pointer so an omitted value defaults to 0 instead of
// being rejected.
type CreateLeadInput struct {
	Name    string   `json:"name" binding:"required"`
	Email   string   `json:"email" binding:"required"`
	Company string   `json:"company" binding:"required"`
	Value   *float64 `json:"value"`
	Source  string   `json:"source" binding:"required"`
}

type LeadController struct {
	leads    *store.LeadStore
	notifier *services.NotifierService
}

func NewLeadController(leads *store.LeadStore, notifier *services.NotifierService) *LeadController {
	return &LeadController{leads: leads, notifier: notifier}
}

// CreateLead creates a new lead; status is always new
func (ct *LeadController) CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "value" {
			utils.RespondWithError(c, http.StatusBadRequest, "Deal value must be a number")
			return
		}
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	value := 0.0
	if input.Value != nil {
		value = *input.Value
	}

	lead := ct.leads.Create(input.Name, input.Email, input.Company, value, input.Source)
	ct.notifier.LeadCreated(lead)
	c.JSON(http.StatusCreated, lead)
}

// GetLeads retrieves all leads in creation order
func (ct *LeadController) GetLeads(c *gin.Context) {
	c.JSON(http.StatusOK, ct.leads.List())
}

// GetLead retrieves a specific lead by ID
func (ct *LeadController) GetLead(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	lead, err := ct.leads.GetByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// DeleteLead removes a lead
func (ct *LeadController) DeleteLead(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	if err := ct.leads.Delete(id); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}
