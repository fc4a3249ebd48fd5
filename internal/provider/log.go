package provider

import (
	"context"

	"github.com/jmehdipour/sms-relay/internal/logger"
	"github.com/jmehdipour/sms-relay/internal/model"
	"github.com/jmehdipour/sms-relay/internal/util"
	"go.uber.org/zap"
)

// LogProvider simulates sending by logging the message. Used for local development.
type LogProvider struct {
	log *zap.Logger
}

func NewLogProvider(log *zap.Logger) *LogProvider {
	if log == nil {
		log = logger.Log
	}
	return &LogProvider{log: log}
}

func (p *LogProvider) Name() string { return "log" }

func (p *LogProvider) Send(ctx context.Context, sms model.SMS) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sid := util.NewPrefixedID("SM")
	p.log.Info("sms sent (simulated)",
		zap.String("message_sid", sid),
		zap.String("to", sms.To),
		zap.String("from", sms.From),
		zap.Int("body_len", len(sms.Body)),
	)
	return sid, nil
}
