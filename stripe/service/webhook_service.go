package service

import (
	"github.com/DizTNP/TNP-Website/logger"
	qbIface "github.com/DizTNP/TNP-Website/quickbooks/iface"
	qbService "github.com/DizTNP/TNP-Website/quickbooks/service"
)

type StripeWebhookService struct {
	loggerProvider logger.Provider
	stripeClient   *Client

	// newCustomers builds a fresh QuickBooks client per event so each
	// delivery refreshes and uses its own token pair.
	newCustomers func() qbIface.Customers
}

func NewStripeWebhookService(log logger.Provider, stripeClient *Client) *StripeWebhookService {
	return &StripeWebhookService{
		loggerProvider: log,
		stripeClient:   stripeClient,
		newCustomers: func() qbIface.Customers {
			return qbService.NewClient(log, qbService.ConfigFromEnv())
		},
	}
}
