//go:generate mockery --output=./mocks --all
package iface

import (
	"context"

	"github.com/DizTNP/TNP-Website/quickbooks/domain"
)

// Customers is the QuickBooks surface the reconciliation pipeline depends on.
type Customers interface {
	RefreshAccessToken(ctx context.Context) error
	CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
}
