package service

import (
	"github.com/DizTNP/TNP-Website/logger"
)

type StripeService struct {
	loggerProvider logger.Provider
	stripeClient   *Client
}

func NewStripeService(log logger.Provider, stripeClient *Client) *StripeService {
	return &StripeService{
		loggerProvider: log,
		stripeClient:   stripeClient,
	}
}
