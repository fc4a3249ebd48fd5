package relay

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jmehdipour/sms-relay/internal/logger"
	"github.com/jmehdipour/sms-relay/internal/model"
	"github.com/jmehdipour/sms-relay/internal/provider"
	"github.com/jmehdipour/sms-relay/internal/provider/providertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const sender = "+15550000000"

func TestSendCallsProviderOnce(t *testing.T) {
	fake := &providertest.Fake{SID: "SM42"}
	svc := New(fake, sender, zap.NewNop())

	sid, err := svc.Send(context.Background(), SourceSend, model.SendRequest{
		Message:     "hello there",
		PhoneNumber: "+15551234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "SM42", sid)
	assert.Equal(t, []model.SMS{{
		To:   "+15551234567",
		From: sender,
		Body: "hello there",
	}}, fake.Calls())
}

func TestSendForwardsFieldsVerbatim(t *testing.T) {
	fake := &providertest.Fake{SID: "SM1"}
	svc := New(fake, sender, nil)

	_, err := svc.Send(context.Background(), SourceSend, model.SendRequest{
		Message:     "  padded  ",
		PhoneNumber: " +1 555 123 ",
	})
	require.NoError(t, err)
	require.Len(t, fake.Calls(), 1)
	assert.Equal(t, "  padded  ", fake.Calls()[0].Body)
	assert.Equal(t, " +1 555 123 ", fake.Calls()[0].To)
}

func TestSendRejectsBlankInput(t *testing.T) {
	fake := &providertest.Fake{SID: "SM1"}
	svc := New(fake, sender, zap.NewNop())

	for _, req := range []model.SendRequest{
		{},
		{Message: "hi"},
		{PhoneNumber: "+1555"},
		{Message: "\t", PhoneNumber: "+1555"},
		{Message: "hi", PhoneNumber: "  "},
	} {
		_, err := svc.Send(context.Background(), SourceSend, req)
		assert.ErrorIs(t, err, ErrInvalidMessage)
	}
	assert.Empty(t, fake.Calls())
}

func TestSendReturnsProviderErrorUnchanged(t *testing.T) {
	perr := &provider.Error{Provider: "fake", Code: 21211, Description: "The 'To' number is not valid."}
	plain := errors.New("dial tcp: i/o timeout")

	for _, want := range []error{perr, plain} {
		fake := &providertest.Fake{Err: want}
		core, logs := observer.New(zap.ErrorLevel)
		svc := New(fake, sender, zap.New(core))

		sid, err := svc.Send(context.Background(), SourceWebhook, model.SendRequest{Message: "hi", PhoneNumber: "+1555"})
		assert.Empty(t, sid)
		assert.Same(t, want, err)
		assert.Equal(t, want.Error(), err.Error())
		assert.Len(t, fake.Calls(), 1)
		assert.Equal(t, 1, logs.FilterMessage("sms send failed").Len())
	}
}

func TestSendConcurrent(t *testing.T) {
	fake := &providertest.Fake{SID: "SM1"}
	svc := New(fake, sender, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Send(context.Background(), SourceSend, model.SendRequest{Message: "hi", PhoneNumber: "+1555"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, fake.Calls(), 20)
}

func TestNewFallsBackToGlobalLogger(t *testing.T) {
	prev := logger.Log
	core, logs := observer.New(zap.InfoLevel)
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	svc := New(&providertest.Fake{SID: "SM9"}, sender, nil)
	_, err := svc.Send(context.Background(), SourceCLI, model.SendRequest{Message: "hi", PhoneNumber: "+1555"})
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("sms sent").Len())
	assert.Equal(t, sender, svc.From())
}
