package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DizTNP/TNP-Website/framework/web"
	schedulingDomain "github.com/DizTNP/TNP-Website/scheduling/domain"
)

type createPaymentRequest struct {
	CustomerName        string `json:"customerName" binding:"required"`
	CustomerEmail       string `json:"customerEmail" binding:"required,email"`
	CustomerPhone       string `json:"customerPhone" binding:"required"`
	ServiceAddress      string `json:"serviceAddress" binding:"required"`
	ServiceType         string `json:"serviceType" binding:"required"`
	ServiceDescription  string `json:"serviceDescription" binding:"required"`
	AppointmentDate     string `json:"appointmentDate" binding:"required"`
	AppointmentTime     string `json:"appointmentTime" binding:"required"`
	IsEmergency         string `json:"isEmergency"`
	SpecialInstructions string `json:"specialInstructions"`
}

type createPaymentResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CreatePaymentSession opens a Stripe checkout session for the service
// call fee and returns the redirect URL to the scheduling form.
func (h *Stripe) CreatePaymentSession(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var req createPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	isEmergency := req.IsEmergency
	if isEmergency == "" {
		isEmergency = "false"
	}

	appointment := schedulingDomain.Appointment{
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		ServiceAddress:      req.ServiceAddress,
		ServiceType:         req.ServiceType,
		ServiceDescription:  req.ServiceDescription,
		AppointmentDate:     req.AppointmentDate,
		AppointmentTime:     req.AppointmentTime,
		IsEmergency:         isEmergency,
		SpecialInstructions: req.SpecialInstructions,
		Source:              schedulingDomain.SourceSchedulingForm,
	}

	session, err := h.service.CreateSchedulingSession(ctx, appointment)
	if err != nil {
		l.Errorf("Stripe API Error: %s", err)
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, createPaymentResponse{
		Success:   true,
		SessionID: session.ID,
		URL:       session.URL,
	}, http.StatusOK)
}
