package service

import (
	"errors"
	"fmt"
)

var (
	// ErrCourierNotSupported is returned when no provider supports the requested courier.
	ErrCourierNotSupported = errors.New("courier not supported")
)

// Lookup identifies the shipment a failure refers to.
type Lookup struct {
	Carrier    string
	Identifier string
	Link       string
}

// NotFoundError reports a response that was delivered but carried no
// tracking data, either a fault or an empty result.
type NotFoundError struct {
	Lookup
	Reason string
	// Excerpt is the start of the normalized upstream body.
	Excerpt string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Carrier, e.Identifier, e.Reason)
}

// UpstreamError reports a failed exchange with the carrier: a transport
// failure or a non-2xx response.
type UpstreamError struct {
	Lookup
	// Status is the upstream status, or the synthetic one of a transport failure.
	Status  int
	Reason  string
	Excerpt string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s: upstream status %d: %s", e.Carrier, e.Identifier, e.Status, e.Reason)
}
