package service

import "errors"

var (
	// ErrRetriesExhausted is returned by LoadCollectionStrict when every
	// attempt failed. It wraps the last read error.
	ErrRetriesExhausted = errors.New("product read retries exhausted")

	// ErrClientUnavailable wraps bootstrap failures. It is never retried.
	ErrClientUnavailable = errors.New("backend client unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrUnknownWebhook is returned for a webhook name with no configured
	// target.
	ErrUnknownWebhook = errors.New("unknown webhook")
)
