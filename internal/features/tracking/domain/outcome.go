package domain

// NoTrackingResult is the failure reason reported when a response carries no
// status, no delivery estimate and no events.
const NoTrackingResult = "No tracking result in response"

// TransportErrorMarker prefixes the synthetic body of an attempt that failed
// below HTTP (deadline expiry, connection error).
const TransportErrorMarker = "__TRANSPORT_ERROR__"

// RawResponse is the result of one request attempt. It is never mutated after creation.
type RawResponse struct {
	// Succeeded is true when the transport worked and the upstream answered 2xx.
	Succeeded bool
	// StatusCode is the upstream status, or a synthetic one on transport failure.
	StatusCode int
	// Body is the response text, or the transport marker on transport failure.
	Body string
	// TransportError describes a transport failure; empty otherwise.
	TransportError string
}

// TransportOK reports whether the attempt reached the upstream.
func (r RawResponse) TransportOK() bool {
	return r.TransportError == ""
}

// ParseOutcome is either a successfully assembled record or a failure reason.
type ParseOutcome struct {
	Record *TrackingRecord
	Reason string
}

// Success wraps a record.
func Success(record *TrackingRecord) ParseOutcome {
	return ParseOutcome{Record: record}
}

// Failure wraps a failure reason.
func Failure(reason string) ParseOutcome {
	return ParseOutcome{Reason: reason}
}

// OK reports whether the outcome carries a record.
func (o ParseOutcome) OK() bool {
	return o.Record != nil
}
