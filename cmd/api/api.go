package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/DizTNP/TNP-Website/framework/mid"
	"github.com/DizTNP/TNP-Website/framework/web"
	"github.com/DizTNP/TNP-Website/logger"
	qbHandlers "github.com/DizTNP/TNP-Website/quickbooks/handlers"
	stripeHandlers "github.com/DizTNP/TNP-Website/stripe/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging) *API {
	return &API{
		shutdown,
		logging,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	stripe := stripeHandlers.NewStripe(loggerProvider)
	quickbooks := qbHandlers.NewQuickBooks(loggerProvider)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	apiGroup := web.NewGroup(app, "/api/v1")
	{
		apiGroup.Post("/payments/session", stripe.CreatePaymentSession)
		apiGroup.Post("/customers", quickbooks.CreateCustomer)
	}

	webhooks := web.NewGroup(app, "/webhooks")
	{
		webhooks.Post("/stripe", stripe.WebhookHandler)
	}

	return app
}
