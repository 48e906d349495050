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
	"github.com/DizTNP/TNP-Website/quickbooks/domain"
	"github.com/DizTNP/TNP-Website/quickbooks/iface"
	"github.com/DizTNP/TNP-Website/quickbooks/iface/mocks"
)

func validCustomerBody() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Jordan Smith",
		"phone":         "270-555-0134",
		"email":         "jordan@example.com",
		"address-line1": "123 Main St",
		"city":          "Paducah",
		"state":         "KY",
		"zip":           "42001",
	}
}

func TestQuickBooks_CreateCustomer(t *testing.T) {
	type fields struct {
		customers *mocks.Customers
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
					"name": "Jordan Smith",
				}),
			},
			wantErr:    true,
			wantStatus: 400,
		},
		{
			name: "refresh failure does not block creation",
			args: args{
				ctx: testTools.GenerateCtxWithJSON(t, validCustomerBody()),
			},
			wantErr: false,
			on: func(f *fields) {
				f.customers.On("RefreshAccessToken", mock.AnythingOfType("*gin.Context")).
					Return(errors.New("revoked refresh token"))
				f.customers.On("CreateCustomer", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.Customer")).
					Return(&domain.Customer{ID: "58", DisplayName: "Jordan Smith"}, nil)
			},
		},
		{
			name: "create customer error",
			args: args{
				ctx: testTools.GenerateCtxWithJSON(t, validCustomerBody()),
			},
			wantErr:    true,
			wantStatus: 500,
			on: func(f *fields) {
				f.customers.On("RefreshAccessToken", mock.AnythingOfType("*gin.Context")).
					Return(nil)
				f.customers.On("CreateCustomer", mock.AnythingOfType("*gin.Context"), mock.AnythingOfType("domain.Customer")).
					Return(nil, errors.New("validation rejected"))
			},
		},
		{
			name: "success create customer",
			args: args{
				ctx: testTools.GenerateCtxWithJSON(t, validCustomerBody()),
			},
			wantErr: false,
			on: func(f *fields) {
				f.customers.On("RefreshAccessToken", mock.AnythingOfType("*gin.Context")).
					Return(nil)
				f.customers.On("CreateCustomer", mock.AnythingOfType("*gin.Context"), mock.MatchedBy(func(c domain.Customer) bool {
					return c.DisplayName == "Jordan Smith" &&
						c.PrimaryEmailAddr.Address == "jordan@example.com" &&
						c.PrimaryPhone.FreeFormNumber == "270-555-0134" &&
						c.BillAddr.Country == "USA"
				})).Return(&domain.Customer{ID: "58", DisplayName: "Jordan Smith"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				customers: mocks.NewCustomers(t),
			}

			h := &QuickBooks{
				loggerProvider: logger.FromContext,
				newCustomers:   func() iface.Customers { return f.customers },
			}

			if tt.on != nil {
				tt.on(&f)
			}

			err := h.CreateCustomer(tt.args.ctx)

			if (err != nil) != tt.wantErr {
				t.Errorf("QuickBooks.CreateCustomer() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantStatus != 0 {
				webErr, ok := err.(*web.Error)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, webErr.Status)
			}
		})
	}
}
