package domain

import (
	"fmt"
	"time"

	schedulingDomain "github.com/DizTNP/TNP-Website/scheduling/domain"
)

// billing country is fixed; we don't serve customers outside the US
const customerCountry = "USA"

// CreationChannel is the human-readable annotation stamped into the
// customer's Notes field, describing how the record reached us.
type CreationChannel string

const (
	// ChannelWebsitePayment marks customers created by the payment webhook.
	ChannelWebsitePayment CreationChannel = "created via website payment"

	// ChannelWebsiteSignup marks customers created by the signup form.
	ChannelWebsiteSignup CreationChannel = "signed up via website"
)

// Customer is the QuickBooks Online customer schema, a one-way projection of
// our internal customer record. QuickBooks owns the persisted entity and
// assigns the Id.
type Customer struct {
	ID               string           `json:"Id,omitempty"`
	DisplayName      string           `json:"DisplayName"`
	PrimaryPhone     *TelephoneNumber `json:"PrimaryPhone,omitempty"`
	PrimaryEmailAddr *EmailAddress    `json:"PrimaryEmailAddr,omitempty"`
	BillAddr         *PhysicalAddress `json:"BillAddr,omitempty"`
	Notes            string           `json:"Notes,omitempty"`
	Active           bool             `json:"Active"`
}

type TelephoneNumber struct {
	FreeFormNumber string `json:"FreeFormNumber"`
}

type EmailAddress struct {
	Address string `json:"Address"`
}

type PhysicalAddress struct {
	Line1                  string `json:"Line1,omitempty"`
	City                   string `json:"City,omitempty"`
	CountrySubDivisionCode string `json:"CountrySubDivisionCode,omitempty"`
	PostalCode             string `json:"PostalCode,omitempty"`
	Country                string `json:"Country,omitempty"`
}

// CustomerFromRecord maps our internal customer record onto the QuickBooks
// schema. Deterministic except for the timestamp stamped into Notes; missing
// record fields simply become empty in the projection.
func CustomerFromRecord(record schedulingDomain.CustomerRecord, channel CreationChannel, now time.Time) Customer {
	return Customer{
		DisplayName: record.Name,
		PrimaryPhone: &TelephoneNumber{
			FreeFormNumber: record.Phone,
		},
		PrimaryEmailAddr: &EmailAddress{
			Address: record.Email,
		},
		BillAddr: &PhysicalAddress{
			Line1:                  record.AddressLine1,
			City:                   record.City,
			CountrySubDivisionCode: record.State,
			PostalCode:             record.Zip,
			Country:                customerCountry,
		},
		Notes:  fmt.Sprintf("Customer %s on %s", channel, now.UTC().Format(time.RFC3339)),
		Active: true,
	}
}
