package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	schedulingDomain "github.com/DizTNP/TNP-Website/scheduling/domain"
)

func TestCustomerFromRecord(t *testing.T) {
	record := schedulingDomain.CustomerRecord{
		Name:         "Jordan Smith",
		Phone:        "270-555-0134",
		Email:        "jordan@example.com",
		AddressLine1: "123 Main St",
		City:         "Paducah",
		State:        "KY",
		Zip:          "42001",
	}

	now := time.Date(2026, time.August, 31, 14, 30, 0, 0, time.UTC)

	customer := CustomerFromRecord(record, ChannelWebsitePayment, now)

	// identity fields must carry over verbatim
	assert.Equal(t, "Jordan Smith", customer.DisplayName)
	assert.Equal(t, "jordan@example.com", customer.PrimaryEmailAddr.Address)
	assert.Equal(t, "270-555-0134", customer.PrimaryPhone.FreeFormNumber)

	assert.Equal(t, &PhysicalAddress{
		Line1:                  "123 Main St",
		City:                   "Paducah",
		CountrySubDivisionCode: "KY",
		PostalCode:             "42001",
		Country:                "USA",
	}, customer.BillAddr)

	assert.Equal(t, "Customer created via website payment on 2026-08-31T14:30:00Z", customer.Notes)
	assert.True(t, customer.Active)
	assert.Empty(t, customer.ID)
}

func TestCustomerFromRecordSignupChannel(t *testing.T) {
	now := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)

	customer := CustomerFromRecord(schedulingDomain.CustomerRecord{Name: "Casey Doe"}, ChannelWebsiteSignup, now)

	assert.Equal(t, "Customer signed up via website on 2026-08-31T09:00:00Z", customer.Notes)
}

func TestCustomerFromRecordMissingFields(t *testing.T) {
	customer := CustomerFromRecord(schedulingDomain.CustomerRecord{}, ChannelWebsitePayment, time.Now())

	assert.Empty(t, customer.DisplayName)
	assert.Empty(t, customer.PrimaryPhone.FreeFormNumber)
	assert.Empty(t, customer.PrimaryEmailAddr.Address)
	assert.Equal(t, "USA", customer.BillAddr.Country)
}
