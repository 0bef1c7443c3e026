package domain

import (
	"net/url"
	"strings"
)

// LinkBuilder builds carrier-hosted tracking page URLs.
type LinkBuilder struct {
	// BaseURL is the tracking page, optionally with fixed query parameters.
	BaseURL string
	// Param is the query parameter that carries the identifier.
	Param string
}

// Build returns the deep link for identifier. The identifier is always sent
// as a query parameter, existing parameters of BaseURL are preserved.
func (b LinkBuilder) Build(identifier string) string {
	param := b.Param
	if param == "" {
		param = "query"
	}

	u, err := url.Parse(b.BaseURL)
	if err != nil {
		sep := "?"
		if strings.Contains(b.BaseURL, "?") {
			sep = "&"
		}
		return b.BaseURL + sep + url.QueryEscape(param) + "=" + url.QueryEscape(identifier)
	}

	q := u.Query()
	q.Set(param, identifier)
	u.RawQuery = q.Encode()
	return u.String()
}
