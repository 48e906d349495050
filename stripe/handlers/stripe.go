package handlers

import (
	"github.com/DizTNP/TNP-Website/logger"
	"github.com/DizTNP/TNP-Website/stripe/iface"
	"github.com/DizTNP/TNP-Website/stripe/service"
)

// Stripe handles the checkout session endpoint and the webhook receiver.
type Stripe struct {
	loggerProvider logger.Provider
	service        iface.StripeService
	webhookService iface.StripeWebhookService
}

// NewStripe creates new stripe package handlers.
func NewStripe(loggerProvider logger.Provider) *Stripe {
	stripeClient := service.NewClient(service.ConfigFromEnv())

	return &Stripe{
		loggerProvider: loggerProvider,
		service:        service.NewStripeService(loggerProvider, stripeClient),
		webhookService: service.NewStripeWebhookService(loggerProvider, stripeClient),
	}
}
