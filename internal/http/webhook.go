package http

import (
	"net/http"

	"github.com/jmehdipour/sms-relay/internal/metrics"
	"github.com/jmehdipour/sms-relay/internal/model"
	"github.com/jmehdipour/sms-relay/internal/service/relay"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// webhookHandler sends an SMS for new_signup events. Any other event, a missing
// data object, blank fields or an unparsable body all get the same 400.
func webhookHandler(svc *relay.Service, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.WebhookRequest
		bindErr := c.Bind(&req)

		log.Info("received webhook event",
			zap.String("event", req.Event),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)

		if bindErr != nil {
			metrics.WebhookEventsTotal.WithLabelValues("ignored").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": errInvalidWebhook})
		}

		sendReq, ok := req.SendRequest()
		if !ok {
			metrics.WebhookEventsTotal.WithLabelValues("ignored").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": errInvalidWebhook})
		}

		metrics.WebhookEventsTotal.WithLabelValues("accepted").Inc()
		return relaySend(c, svc, relay.SourceWebhook, sendReq, errInvalidWebhook)
	}
}
