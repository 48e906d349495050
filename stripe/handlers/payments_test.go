package handlers

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	testTools "github.com/DizTNP/TNP-Website/common/test_tools"
	"github.com/DizTNP/TNP-Website/framework/web"
	"github.com/DizTNP/TNP-Website/logger"
	schedulingDomain "github.com/DizTNP/TNP-Website/scheduling/domain"
	"github.com/DizTNP/TNP-Website/stripe/iface/mocks"
	"github.com/DizTNP/TNP-Website/stripe/service"
)

func validPaymentBody() map[string]interface{} {
	return map[string]interface{}{
		"customerName":       "Jordan Smith",
		"customerEmail":      "jordan@example.com",
		"customerPhone":      "270-555-0134",
		"serviceAddress":     "123 Main St, Paducah, KY, 42001",
		"serviceType":        "drain-cleaning",
		"serviceDescription": "Kitchen sink backing up",
		"appointmentDate":    "2024-06-12",
		"appointmentTime":    "10:00",
	}
}

func TestStripe_CreatePaymentSession(t *testing.T) {
	type fields struct {
		service *mocks.StripeService
	}

	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name       string
		args       args
		wantErr    bool
		wantStatus int
		on         func(f *fields)
	}{
		{
			name: "missing required field",
			args: args{
				ctx: testTools.GenerateCtxWithJSON(t, map[string]interface{}{
					"customerName": "Jordan Smith",
				}),
			},
			wantErr:    true,
			wantStatus: 400,
		},
		{
			name: "invalid email",
			args: args{
				ctx: func() *gin.Context {
					body := validPaymentBody()
					body["customerEmail"] = "not-an-email"

					return testTools.GenerateCtxWithJSON(t, body)
				}(),
			},
			wantErr:    true,
			wantStatus: 400,
		},
		{
			name: "stripe error",
			args: args{
				ctx: testTools.GenerateCtxWithJSON(t, validPaymentBody()),
			},
			wantErr:    true,
			wantStatus: 500,
			on: func(f *fields) {
				f.service.On("CreateSchedulingSession", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.Appointment")).
					Return(nil, errors.New("stripe: rate limited"))
			},
		},
		{
			name: "success create session",
			args: args{
				ctx: testTools.GenerateCtxWithJSON(t, validPaymentBody()),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("CreateSchedulingSession", mock.AnythingOfType("*gin.Context"), mock.MatchedBy(func(a schedulingDomain.Appointment) bool {
					return a.CustomerName == "Jordan Smith" &&
						a.IsEmergency == "false" &&
						a.Source == schedulingDomain.SourceSchedulingForm
				})).Return(&service.SchedulingSession{
					ID:  "cs_test_a1b2c3",
					URL: "https://checkout.stripe.com/c/pay/cs_test_a1b2c3",
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				service: mocks.NewStripeService(t),
			}

			h := &Stripe{
				loggerProvider: logger.FromContext,
				service:        f.service,
			}

			if tt.on != nil {
				tt.on(&f)
			}

			err := h.CreatePaymentSession(tt.args.ctx)

			if (err != nil) != tt.wantErr {
				t.Errorf("Stripe.CreatePaymentSession() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantStatus != 0 {
				webErr, ok := err.(*web.Error)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, webErr.Status)
			}
		})
	}
}
