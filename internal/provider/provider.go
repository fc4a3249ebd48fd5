package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmehdipour/sms-relay/internal/config"
	"github.com/jmehdipour/sms-relay/internal/model"
	"go.uber.org/zap"
)

// Provider sends a single SMS and returns the provider-assigned message sid.
type Provider interface {
	Name() string
	Send(ctx context.Context, sms model.SMS) (string, error)
}

var ErrNoSID = errors.New("provider returned no message sid")

// Error is a failure reported by the provider API itself (as opposed to a
// transport failure). Error() yields the provider's description unchanged.
type Error struct {
	Provider    string
	Code        int
	Status      int
	Description string
	Err         error
}

func (e *Error) Error() string { return e.Description }
func (e *Error) Unwrap() error { return e.Err }

// New builds the provider selected by cfg.Provider.Driver.
func New(cfg config.Config, log *zap.Logger) (Provider, error) {
	switch cfg.Provider.Driver {
	case config.DriverTwilio:
		return NewTwilioProvider(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken), nil
	case config.DriverLog:
		return NewLogProvider(log), nil
	default:
		return nil, fmt.Errorf("unknown provider driver %q", cfg.Provider.Driver)
	}
}
