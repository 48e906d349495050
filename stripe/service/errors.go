package service

import "errors"

var (
	ErrSignatureVerification = errors.New("Webhook signature verification failed")
	ErrWebhookHandler        = errors.New("Webhook handler failed")
	ErrCreateSession         = errors.New("Failed to create checkout session")
)
