package handler

import (
	"errors"
	"net/http"

	"tracking-bridge/internal/core/logger"
	"tracking-bridge/internal/features/tracking/domain"
	"tracking-bridge/internal/features/tracking/ports"
	"tracking-bridge/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// successCacheControl is sent with every record response.
const successCacheControl = "s-maxage=60, stale-while-revalidate=300"

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidIdentifier  = "invalid_identifier"
	CodeUnsupportedCarrier = "unsupported_carrier"
	CodeNotFound           = "not_found"
	CodeUpstream           = "upstream_error"
	CodeConfig             = "config_error"
	CodeInternal           = "internal_error"
)

// Options bounds the raw payloads echoed by the handler.
type Options struct {
	// RawBudgetBytes bounds the body returned in raw mode.
	RawBudgetBytes int
}

// TrackingHandler handles HTTP requests for tracking operations.
type TrackingHandler struct {
	trackingService ports.TrackingService
	opts            Options
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService ports.TrackingService, opts Options) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
		opts:            opts,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Error is the error description.
	Error string `json:"error"`
	// Code is a stable machine-readable error code.
	Code string `json:"code"`
	// Carrier is the carrier display name.
	Carrier string `json:"carrier,omitempty"`
	// Pro is the normalized shipment identifier.
	Pro string `json:"pro,omitempty"`
	// Link is the carrier-hosted tracking page.
	Link string `json:"link,omitempty"`
	// Status is the upstream status code.
	Status int `json:"status,omitempty"`
	// Raw is a truncated excerpt of the upstream body, only in debug mode.
	Raw string `json:"raw,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// Track godoc
// @Summary Track a shipment
// @Description Looks up a shipment by PRO number and returns the normalized tracking record
// @Tags tracking
// @Produce json
// @Produce xml
// @Param carrier path string true "Carrier (e.g., estes)"
// @Param pro query string true "PRO number; non-digits are ignored"
// @Param mock query string false "Return a canned record when set to 1"
// @Param format query string false "Redirect to the carrier tracking page when set to redirect"
// @Param raw query string false "Return the namespace-normalized upstream body when set to 1"
// @Param debug query string false "Attach an upstream body excerpt to failures when set to 1"
// @Success 200 {object} domain.TrackingRecord
// @Success 302 {string} string "Redirect to the carrier tracking page"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/track/{carrier} [get]
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	carrier := c.Params("carrier")
	pro := c.Query("pro")
	debug := c.Query("debug") == "1"

	if c.Query("format") == "redirect" {
		link, err := h.trackingService.DeepLink(carrier, pro)
		if err != nil {
			return h.fail(c, err, debug)
		}
		return c.Redirect(link, http.StatusFound)
	}

	if c.Query("mock") == "1" {
		record, err := h.trackingService.Mock(carrier, pro)
		if err != nil {
			return h.fail(c, err, debug)
		}
		return ok(c, record)
	}

	if c.Query("raw") == "1" {
		raw, err := h.trackingService.Raw(c.UserContext(), carrier, pro, h.opts.RawBudgetBytes)
		if err != nil {
			return h.fail(c, err, debug)
		}
		c.Set(fiber.HeaderContentType, "text/xml; charset=utf-8")
		return c.Status(http.StatusOK).SendString(raw)
	}

	record, err := h.trackingService.Track(c.UserContext(), carrier, pro)
	if err != nil {
		return h.fail(c, err, debug)
	}
	return ok(c, record)
}

func ok(c *fiber.Ctx, record *domain.TrackingRecord) error {
	c.Set(fiber.HeaderCacheControl, successCacheControl)
	return c.Status(http.StatusOK).JSON(record)
}

// fail maps a service error to its HTTP response.
func (h *TrackingHandler) fail(c *fiber.Ctx, err error, debug bool) error {
	resp := ErrorResponse{RayID: rayID(c)}

	var notFound *service.NotFoundError
	var upstream *service.UpstreamError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier):
		status, resp.Code, resp.Error = http.StatusBadRequest, CodeInvalidIdentifier, "Missing or invalid PRO"
	case errors.Is(err, service.ErrCourierNotSupported):
		status, resp.Code, resp.Error = http.StatusNotFound, CodeUnsupportedCarrier, "courier not supported"
	case errors.Is(err, domain.ErrMissingCredentials):
		resp.Code, resp.Error = CodeConfig, "Carrier credentials are not configured"
	case errors.As(err, &notFound):
		status, resp.Code, resp.Error = http.StatusNotFound, CodeNotFound, notFound.Reason
		resp.Carrier, resp.Pro, resp.Link = notFound.Carrier, notFound.Identifier, notFound.Link
		if debug {
			resp.Raw = notFound.Excerpt
		}
	case errors.As(err, &upstream):
		status, resp.Code, resp.Error = upstreamStatus(upstream.Status), CodeUpstream, upstream.Reason
		resp.Carrier, resp.Pro, resp.Link, resp.Status = upstream.Carrier, upstream.Identifier, upstream.Link, upstream.Status
		if debug {
			resp.Raw = upstream.Excerpt
		}
	default:
		logger.Get().Error("Tracking lookup failed",
			zap.String("carrier", c.Params("carrier")),
			zap.String("ray_id", resp.RayID),
			zap.Error(err),
		)
		resp.Code, resp.Error = CodeInternal, "Server exception"
	}

	return c.Status(status).JSON(resp)
}

// upstreamStatus passes the upstream error status through. Anything that is
// not an error status is reported as a bad gateway.
func upstreamStatus(status int) int {
	if status < 400 || status > 599 {
		return http.StatusBadGateway
	}
	return status
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
