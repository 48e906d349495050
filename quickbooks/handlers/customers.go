package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DizTNP/TNP-Website/framework/web"
	"github.com/DizTNP/TNP-Website/logger"
	"github.com/DizTNP/TNP-Website/quickbooks/domain"
	"github.com/DizTNP/TNP-Website/quickbooks/iface"
	"github.com/DizTNP/TNP-Website/quickbooks/service"
	schedulingDomain "github.com/DizTNP/TNP-Website/scheduling/domain"
)

// QuickBooks handles the direct customer-creation endpoint used by the
// signup form.
type QuickBooks struct {
	loggerProvider logger.Provider
	newCustomers   func() iface.Customers
}

// NewQuickBooks creates new quickbooks package handlers. A fresh client is
// built from environment configuration for every request; nothing is shared
// across invocations.
func NewQuickBooks(loggerProvider logger.Provider) *QuickBooks {
	return &QuickBooks{
		loggerProvider: loggerProvider,
		newCustomers: func() iface.Customers {
			return service.NewClient(loggerProvider, service.ConfigFromEnv())
		},
	}
}

type createCustomerRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	AddressLine1 string `json:"address-line1" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Zip          string `json:"zip" binding:"required"`
}

type createCustomerResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

// CreateCustomer adds a customer to QuickBooks from an already-structured
// form payload.
func (h *QuickBooks) CreateCustomer(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var req createCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	qb := h.newCustomers()

	// Best-effort refresh: a failure here must not block customer creation,
	// the existing token may still be valid.
	if err := qb.RefreshAccessToken(ctx); err != nil {
		l.Warningf("continuing with existing access token: %s", err)
	}

	record := schedulingDomain.CustomerRecord{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		AddressLine1: req.AddressLine1,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
	}

	customer, err := qb.CreateCustomer(ctx, domain.CustomerFromRecord(record, domain.ChannelWebsiteSignup, time.Now()))
	if err != nil {
		l.Errorf("QuickBooks API Error: %s", err)
		return web.NewRequestError(service.ErrCreateCustomer, http.StatusInternalServerError)
	}

	return web.Respond(ctx, createCustomerResponse{
		Success:      true,
		Message:      "Customer added to QuickBooks successfully",
		CustomerID:   customer.ID,
		CustomerName: customer.DisplayName,
	}, http.StatusOK)
}
