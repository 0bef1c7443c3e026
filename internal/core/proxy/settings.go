package proxy

import (
	"net"
	"net/url"
	"strconv"
)

// Settings contains outbound proxy configuration for carrier requests.
type Settings struct {
	Enabled  bool
	Hostname string
	Port     int
	Username string
	Password string
}

// HasProxy returns true if proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// URL returns the proxy URL with credentials, or nil when no proxy is configured.
func (p Settings) URL() *url.URL {
	if !p.HasProxy() {
		return nil
	}
	u := &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(p.Hostname, strconv.Itoa(p.Port)),
	}
	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}

// Redacted returns the proxy URL with the password masked, for logging.
func (p Settings) Redacted() string {
	u := p.URL()
	if u == nil {
		return ""
	}
	return u.Redacted()
}
