package relay

import (
	"context"
	"errors"
	"time"

	"github.com/jmehdipour/sms-relay/internal/logger"
	"github.com/jmehdipour/sms-relay/internal/metrics"
	"github.com/jmehdipour/sms-relay/internal/model"
	"github.com/jmehdipour/sms-relay/internal/provider"
	"go.uber.org/zap"
)

// Request sources, used as the metrics "source" label.
const (
	SourceSend    = "send"
	SourceWebhook = "webhook"
	SourceCLI     = "cli"
)

var ErrInvalidMessage = errors.New("missing message or phone number")

// Service forwards messages to the provider from the configured sender number.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	provider provider.Provider
	from     string
	log      *zap.Logger
}

// New constructs the relay service. A nil log falls back to logger.Log.
func New(p provider.Provider, from string, log *zap.Logger) *Service {
	if log == nil {
		log = logger.Log
	}
	return &Service{provider: p, from: from, log: log}
}

// From returns the sender number every message is sent from.
func (s *Service) From() string { return s.from }

// Send issues exactly one provider call and returns the message sid.
// Provider errors are returned unwrapped so their description reaches the caller as-is.
// Nothing is retried.
func (s *Service) Send(ctx context.Context, source string, req model.SendRequest) (string, error) {
	if !req.Valid() {
		metrics.MessagesTotal.WithLabelValues(source, "rejected").Inc()
		return "", ErrInvalidMessage
	}

	sms := model.SMS{
		To:   req.PhoneNumber,
		From: s.from,
		Body: req.Message,
	}

	start := time.Now()
	sid, err := s.provider.Send(ctx, sms)
	elapsed := time.Since(start)

	if err != nil {
		metrics.MessagesTotal.WithLabelValues(source, "failed").Inc()
		metrics.ProviderDuration.WithLabelValues(s.provider.Name(), "failed").Observe(elapsed.Seconds())

		fields := []zap.Field{
			zap.String("source", source),
			zap.String("provider", s.provider.Name()),
			zap.String("to", sms.To),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		}
		var perr *provider.Error
		if errors.As(err, &perr) {
			fields = append(fields, zap.Int("provider_code", perr.Code), zap.Int("provider_status", perr.Status))
		}
		s.log.Error("sms send failed", fields...)
		return "", err
	}

	metrics.MessagesTotal.WithLabelValues(source, "sent").Inc()
	metrics.ProviderDuration.WithLabelValues(s.provider.Name(), "sent").Observe(elapsed.Seconds())
	s.log.Info("sms sent",
		zap.String("source", source),
		zap.String("provider", s.provider.Name()),
		zap.String("to", sms.To),
		zap.String("message_sid", sid),
		zap.Duration("elapsed", elapsed),
	)
	return sid, nil
}
