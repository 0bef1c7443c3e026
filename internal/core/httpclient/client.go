package httpclient

import (
	"net/http"
	"time"

	"tracking-bridge/internal/core/logger"
	"tracking-bridge/internal/core/proxy"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound carrier request.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs its outcome.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	}
	if action := req.Header.Get("SOAPAction"); action != "" {
		fields = append(fields, zap.String("soap_action", action))
	}

	log := logger.Get().With(fields...)
	log.Debug("HTTP Request Started")

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		log.Warn("HTTP Request Failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	level := zap.DebugLevel
	if resp.StatusCode >= http.StatusInternalServerError {
		level = zap.WarnLevel
	}
	log.Log(level, "HTTP Request Completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware. Requests go
// through the outbound proxy when one is configured.
func NewClient(timeout time.Duration, settings proxy.Settings) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if u := settings.URL(); u != nil {
		transport.Proxy = http.ProxyURL(u)
		logger.Get().Info("Using outbound proxy", zap.String("proxy", settings.Redacted()))
	}

	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: transport,
		},
		Timeout: timeout,
	}
}
