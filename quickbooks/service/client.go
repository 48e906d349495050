package service

import (
	"github.com/go-resty/resty/v2"

	"github.com/DizTNP/TNP-Website/common"
	"github.com/DizTNP/TNP-Website/logger"
)

const (
	productionBaseURL = "https://quickbooks.api.intuit.com"
	sandboxBaseURL    = "https://sandbox-quickbooks.api.intuit.com"

	bearerTokenURL = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"

	// QuickBooks API minor version pinned for the customer resource.
	minorVersion = "65"
)

// Config carries the QuickBooks credentials bundle, read from the execution
// environment once per invocation.
type Config struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
	RealmID      string
	Sandbox      bool
}

// ConfigFromEnv reads the credentials bundle from the environment.
func ConfigFromEnv() Config {
	return Config{
		ClientID:     common.GetEnv("QB_CLIENT_ID", ""),
		ClientSecret: common.GetEnv("QB_CLIENT_SECRET", ""),
		AccessToken:  common.GetEnv("QB_ACCESS_TOKEN", ""),
		RefreshToken: common.GetEnv("QB_REFRESH_TOKEN", ""),
		RealmID:      common.GetEnv("QB_REALM_ID", ""),
		Sandbox:      common.GetEnv("QB_ENVIRONMENT", "production") == "sandbox",
	}
}

// Client talks to the QuickBooks Online REST API for a single invocation.
// Callers construct one per request rather than sharing a process-wide
// instance; the token pair held here may be rotated by RefreshAccessToken
// and is never persisted anywhere durable.
type Client struct {
	loggerProvider logger.Provider
	http           *resty.Client
	cfg            Config
	baseURL        string
	tokenURL       string
}

// NewClient creates a QuickBooks client bound to the given credentials.
func NewClient(loggerProvider logger.Provider, cfg Config) *Client {
	baseURL := productionBaseURL
	if cfg.Sandbox {
		baseURL = sandboxBaseURL
	}

	return &Client{
		loggerProvider: loggerProvider,
		http:           resty.New(),
		cfg:            cfg,
		baseURL:        baseURL,
		tokenURL:       bearerTokenURL,
	}
}
