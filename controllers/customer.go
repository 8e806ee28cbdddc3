package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crmtrack-backend/models"
	"crmtrack-backend/store"
	"crmtrack-backend/utils"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Company string `json:"company" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Status  string `json:"status"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a
// customer. Updates overwrite the whole record, so every field is
// required; there are no partial updates.
type UpdateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Company string `json:"company" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

type CustomerController struct {
	customers *store.CustomerStore
}

func NewCustomerController(customers *store.CustomerStore) *CustomerController {
	return &CustomerController{customers: customers}
}

// CreateCustomer creates a new customer record
func (ct *CustomerController) CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := models.CustomerStatusProspect
	if input.Status != "" {
		parsed, err := models.ParseCustomerStatus(input.Status)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer status")
			return
		}
		status = parsed
	}

	customer := ct.customers.Create(input.Name, input.Email, input.Company, input.Phone, status)
	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers in creation order
func (ct *CustomerController) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, ct.customers.List())
}

// GetCustomer retrieves a specific customer by ID
func (ct *CustomerController) GetCustomer(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	customer, err := ct.customers.GetByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer overwrites an existing customer with the supplied record
func (ct *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status, err := models.ParseCustomerStatus(input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer status")
		return
	}

	customer, err := ct.customers.Update(id, input.Name, input.Email, input.Company, input.Phone, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer. Contact events recorded against the
// customer are left in place.
func (ct *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	if err := ct.customers.Delete(id); err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
