package controllers

import (
	"net/http"

	"hvacpro-backend/models"
	"hvacpro-backend/services"
	"hvacpro-backend/sheets"
	"hvacpro-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerInput defines the JSON structure for creating or replacing a
// customer. Updates are full-record replaces, so the same shape serves both.
type CustomerInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

type CustomerController struct {
	customers *sheets.CustomerRepo
	log       *zap.Logger
}

func NewCustomerController(customers *sheets.CustomerRepo, logger *zap.Logger) *CustomerController {
	return &CustomerController{customers: customers, log: logger}
}

// List returns all customers, optionally narrowed by ?search=.
func (ct *CustomerController) List(c *gin.Context) {
	customers, err := ct.customers.GetAll(c.Request.Context())
	if err != nil {
		respondGatewayError(c, err, "Failed to retrieve customers")
		return
	}

	customers = services.FilterCustomers(customers, c.Query("search"))

	c.JSON(http.StatusOK, customers)
}

func (ct *CustomerController) Get(c *gin.Context) {
	customer, err := ct.customers.GetByID(c.Request.Context(), models.ID(c.Param("id")))
	if err != nil {
		respondLookupError(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ct *CustomerController) Create(c *gin.Context) {
	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := utils.RequiredFields(
		utils.Field{Name: "firstName", Value: input.FirstName},
		utils.Field{Name: "lastName", Value: input.LastName},
	); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	created, err := ct.customers.Create(c.Request.Context(), models.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Zip:       input.Zip,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (ct *CustomerController) Update(c *gin.Context) {
	id := models.ID(c.Param("id"))

	var input CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	updated, err := ct.customers.Update(c.Request.Context(), id, models.Customer{
		ID:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Zip:       input.Zip,
	})
	if err != nil {
		respondGatewayError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (ct *CustomerController) Delete(c *gin.Context) {
	if err := ct.customers.Delete(c.Request.Context(), models.ID(c.Param("id"))); err != nil {
		respondGatewayError(c, err, "Failed to delete customer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
