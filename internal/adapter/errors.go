package adapter

import "errors"

var (
	// ErrUpstreamUnavailable is returned when the webhook target cannot be
	// reached.
	ErrUpstreamUnavailable = errors.New("webhook upstream unavailable")

	// ErrInvalidTarget is returned for target URLs that are not absolute
	// http(s) URLs.
	ErrInvalidTarget = errors.New("invalid webhook target")
)
