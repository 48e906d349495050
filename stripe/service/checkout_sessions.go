package service

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	schedulingDomain "github.com/DizTNP/TNP-Website/scheduling/domain"
)

const (
	serviceCallProductName = "Service Call Fee - Top Notch Plumbing"
	serviceCallLogoURL     = "https://tnpplumbing.com/images/tnp-logo.jpg"
)

// SchedulingSession is the subset of a Stripe checkout session the
// scheduling form needs to redirect the customer to payment.
type SchedulingSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// CreateSchedulingSession opens a checkout session collecting the fixed
// service call fee. The appointment details ride along as session
// metadata so the completion webhook can reconstruct them.
func (s *StripeService) CreateSchedulingSession(ctx context.Context, appointment schedulingDomain.Appointment) (*SchedulingSession, error) {
	l := s.loggerProvider(ctx)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(serviceCallProductName),
						Description: stripe.String(fmt.Sprintf("Service call fee for %s appointment on %s at %s",
							appointment.ServiceType, appointment.AppointmentDate, appointment.AppointmentTime)),
						Images: stripe.StringSlice([]string{serviceCallLogoURL}),
					},
					UnitAmount: stripe.Int64(s.stripeClient.serviceCallFee),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:               stripe.String(s.stripeClient.siteBaseURL + "/scheduling.html?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(s.stripeClient.siteBaseURL + "/scheduling.html?canceled=true"),
		CustomerEmail:            stripe.String(appointment.CustomerEmail),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
	}

	for key, value := range appointment.Metadata() {
		params.AddMetadata(key, value)
	}

	session, err := s.stripeClient.api.CheckoutSessions.New(params)
	if err != nil {
		l.Errorf("Failed to create checkout session: %v", err)
		return nil, err
	}

	l.Infof("Created checkout session %s for %s", session.ID, appointment.CustomerEmail)

	return &SchedulingSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}
