//go:generate mockery --output=./mocks --all
package iface

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	schedulingDomain "github.com/DizTNP/TNP-Website/scheduling/domain"
	"github.com/DizTNP/TNP-Website/stripe/service"
)

// StripeService creates checkout sessions for the scheduling form.
type StripeService interface {
	CreateSchedulingSession(ctx context.Context, appointment schedulingDomain.Appointment) (*service.SchedulingSession, error)
}

// StripeWebhookService verifies and reconciles incoming webhook events.
type StripeWebhookService interface {
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
	HandleEvent(ctx context.Context, event stripe.Event) error
}
