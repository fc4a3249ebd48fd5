package http

import (
	"errors"
	"net/http"

	"github.com/jmehdipour/sms-relay/internal/metrics"
	"github.com/jmehdipour/sms-relay/internal/model"
	"github.com/jmehdipour/sms-relay/internal/service/relay"
	"github.com/labstack/echo/v4"
)

const (
	errInvalidBody    = "Invalid request body."
	errMissingFields  = "Missing message or phoneNumber in the request body."
	errInvalidWebhook = "Invalid webhook payload."
)

func sendSMSHandler(svc *relay.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.SendRequest
		if err := c.Bind(&req); err != nil {
			metrics.MessagesTotal.WithLabelValues(relay.SourceSend, "rejected").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": errInvalidBody})
		}

		// blank fields are rejected (and counted) by the service
		return relaySend(c, svc, relay.SourceSend, req, errMissingFields)
	}
}

// relaySend performs the send and maps the outcome to the response body.
// invalidMsg is the 400 message used when the service rejects the input.
func relaySend(c echo.Context, svc *relay.Service, source string, req model.SendRequest, invalidMsg string) error {
	sid, err := svc.Send(c.Request().Context(), source, req)
	if err != nil {
		if errors.Is(err, relay.ErrInvalidMessage) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": invalidMsg})
		}

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":     "success",
		"messageSid": sid,
	})
}
