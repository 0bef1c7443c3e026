package domain

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrInvalidIdentifier is returned when an identifier is empty after normalization.
	ErrInvalidIdentifier = errors.New("missing or invalid PRO")
	// ErrMissingCredentials is returned when carrier credentials are not configured.
	ErrMissingCredentials = errors.New("carrier credentials are not configured")
)

// TrackingQuery is an immutable, normalized tracking request.
type TrackingQuery struct {
	identifier string
}

// NewTrackingQuery normalizes raw with the carrier-specific normalize func and
// returns ErrInvalidIdentifier when nothing is left.
func NewTrackingQuery(raw string, normalize func(string) string) (TrackingQuery, error) {
	if normalize == nil {
		normalize = strings.TrimSpace
	}
	id := normalize(raw)
	if id == "" {
		return TrackingQuery{}, ErrInvalidIdentifier
	}
	return TrackingQuery{identifier: id}, nil
}

// Identifier returns the normalized identifier.
func (q TrackingQuery) Identifier() string {
	return q.identifier
}

// DigitsOnly drops every non-digit rune. Leading zeros are kept.
func DigitsOnly(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// Alphanumeric drops every rune that is not an ASCII letter or digit and upper-cases the rest.
func Alphanumeric(raw string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return -1
		}
		return unicode.ToUpper(r)
	}, raw)
}
