package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"

	qbDomain "github.com/DizTNP/TNP-Website/quickbooks/domain"
	schedulingDomain "github.com/DizTNP/TNP-Website/scheduling/domain"
)

// ConstructEvent verifies the webhook signature against the endpoint
// secret and decodes the event envelope.
func (s *StripeWebhookService) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, signature, s.stripeClient.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}

// HandleEvent dispatches a verified Stripe event. Reconciliation
// failures inside an event are logged and swallowed so Stripe does not
// redeliver the same event indefinitely; only a malformed payload is
// surfaced to the caller.
func (s *StripeWebhookService) HandleEvent(ctx context.Context, event stripe.Event) error {
	l := s.loggerProvider(ctx)

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession

		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			l.Errorf("Failed to parse checkout session from event %s: %v", event.ID, err)
			return err
		}

		s.processCompletedSession(ctx, session)
	default:
		l.Warningf("Unhandled Stripe webhook event type: %s", event.Type)
	}

	return nil
}

// processCompletedSession turns a paid checkout session into a
// QuickBooks customer. Every failure here is terminal for this delivery
// and is logged rather than returned; there is no dead-letter store, so
// a lost create only surfaces in the logs.
//
// Deliveries are not deduplicated. Stripe redelivering the same session
// creates another customer record.
func (s *StripeWebhookService) processCompletedSession(ctx context.Context, session stripe.CheckoutSession) {
	l := s.loggerProvider(ctx)

	l.Infof("Checkout session completed: %s", session.ID)

	appointment := schedulingDomain.AppointmentFromMetadata(session.Metadata)
	if appointment.CustomerName == "" {
		l.Warningf("Checkout session %s carries no appointment metadata, skipping", session.ID)
		return
	}

	record := schedulingDomain.NewCustomerRecord(appointment)
	customer := qbDomain.CustomerFromRecord(record, qbDomain.ChannelWebsitePayment, time.Now())

	customers := s.newCustomers()

	if err := customers.RefreshAccessToken(ctx); err != nil {
		l.Warningf("Failed to refresh QuickBooks access token: %v, continuing with existing access token", err)
	}

	created, err := customers.CreateCustomer(ctx, customer)
	if err != nil {
		l.Errorf("Failed to create QuickBooks customer for session %s: %v", session.ID, err)
		return
	}

	l.Infof("Created QuickBooks customer %s (%s) from session %s", created.ID, created.DisplayName, session.ID)
}
