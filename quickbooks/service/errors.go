package service

import (
	"errors"
)

var (
	ErrTokenRefresh   = errors.New("failed to refresh QuickBooks access token")
	ErrCreateCustomer = errors.New("Failed to create customer in QuickBooks")
	ErrMissingRealmID = errors.New("missing QuickBooks realm id")
)
