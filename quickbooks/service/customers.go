package service

import (
	"context"
	"fmt"

	"github.com/DizTNP/TNP-Website/quickbooks/domain"
)

// customerEnvelope is the wrapper QuickBooks puts around a single customer
// in create/read responses.
type customerEnvelope struct {
	Customer domain.Customer `json:"Customer"`
}

// CreateCustomer issues an unconditional create against the QuickBooks
// customer resource and returns the persisted entity with its assigned Id.
// There is no lookup-before-create: repeated calls with the same payload
// produce duplicate customer records.
func (c *Client) CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	l := c.loggerProvider(ctx)

	if c.cfg.RealmID == "" {
		return nil, ErrMissingRealmID
	}

	var envelope customerEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.cfg.AccessToken).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetQueryParam("minorversion", minorVersion).
		SetBody(customer).
		SetResult(&envelope).
		Post(fmt.Sprintf("%s/v3/company/%s/customer", c.baseURL, c.cfg.RealmID))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCreateCustomer, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s: %s", ErrCreateCustomer, resp.Status(), resp.String())
	}

	l.Infof("customer created successfully in QuickBooks: %s", envelope.Customer.ID)

	return &envelope.Customer, nil
}
