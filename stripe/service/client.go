package service

import (
	"github.com/stripe/stripe-go/v74/client"

	"github.com/DizTNP/TNP-Website/common"
)

const (
	defaultSiteBaseURL    = "https://tnpplumbing.com"
	defaultServiceCallFee = 5000
)

// Config holds the Stripe account credentials along with the
// checkout presentation settings for the scheduling flow.
type Config struct {
	SecretKey      string
	WebhookSecret  string
	SiteBaseURL    string
	ServiceCallFee int64
}

func ConfigFromEnv() Config {
	return Config{
		SecretKey:      common.GetEnv("STRIPE_SECRET_KEY", ""),
		WebhookSecret:  common.GetEnv("STRIPE_WEBHOOK_SECRET", ""),
		SiteBaseURL:    common.GetEnv("SITE_BASE_URL", defaultSiteBaseURL),
		ServiceCallFee: int64(common.GetEnvInt("SERVICE_CALL_FEE", defaultServiceCallFee)),
	}
}

type Client struct {
	api            *client.API
	webhookSecret  string
	siteBaseURL    string
	serviceCallFee int64
}

func NewClient(cfg Config) *Client {
	var api client.API

	api.Init(cfg.SecretKey, nil)

	return &Client{
		api:            &api,
		webhookSecret:  cfg.WebhookSecret,
		siteBaseURL:    cfg.SiteBaseURL,
		serviceCallFee: cfg.ServiceCallFee,
	}
}
