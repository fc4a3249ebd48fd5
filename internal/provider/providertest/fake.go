// Package providertest provides an in-memory provider for tests.
package providertest

import (
	"context"
	"sync"

	"github.com/jmehdipour/sms-relay/internal/model"
)

// Fake records every Send and answers with SID or Err.
type Fake struct {
	SID string
	Err error

	mu    sync.Mutex
	calls []model.SMS
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Send(_ context.Context, sms model.SMS) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, sms)
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	return f.SID, nil
}

// Calls returns a copy of the messages sent so far.
func (f *Fake) Calls() []model.SMS {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.SMS(nil), f.calls...)
}
