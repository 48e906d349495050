package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DizTNP/TNP-Website/framework/web"
	"github.com/DizTNP/TNP-Website/stripe/service"
)

const stripeSignatureHeader = "Stripe-Signature"

type webhookResponse struct {
	Received bool `json:"received"`
}

// WebhookHandler receives Stripe webhook deliveries. The raw body is read
// before any decoding because signature verification runs over the exact
// bytes Stripe sent.
func (h *Stripe) WebhookHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		l.Errorf("Failed to read webhook payload: %s", err)
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	event, err := h.webhookService.ConstructEvent(payload, ctx.GetHeader(stripeSignatureHeader))
	if err != nil {
		l.Errorf("Webhook signature verification failed: %s", err)
		return web.NewRequestError(service.ErrSignatureVerification, http.StatusBadRequest)
	}

	if err := h.webhookService.HandleEvent(ctx, event); err != nil {
		return web.NewRequestError(service.ErrWebhookHandler, http.StatusInternalServerError)
	}

	return web.Respond(ctx, webhookResponse{Received: true}, http.StatusOK)
}
