package provider

import (
	"context"
	"errors"

	"github.com/jmehdipour/sms-relay/internal/model"
	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider sends messages through the Twilio Messages API.
type TwilioProvider struct {
	rest *twilio.RestClient
}

func NewTwilioProvider(accountSID, authToken string) *TwilioProvider {
	return newTwilioProvider(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
}

func newTwilioProvider(params twilio.ClientParams) *TwilioProvider {
	return &TwilioProvider{rest: twilio.NewRestClientWithParams(params)}
}

func (p *TwilioProvider) Name() string { return "twilio" }

// Send creates a message resource. The SDK call takes no context, so ctx is
// only checked before the request is issued.
func (p *TwilioProvider) Send(ctx context.Context, sms model.SMS) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(sms.To)
	params.SetFrom(sms.From)
	params.SetBody(sms.Body)

	resp, err := p.rest.Api.CreateMessage(params)
	if err != nil {
		var restErr *client.TwilioRestError
		if errors.As(err, &restErr) {
			desc := restErr.Message
			if desc == "" {
				desc = restErr.Error()
			}
			return "", &Error{
				Provider:    p.Name(),
				Code:        restErr.Code,
				Status:      restErr.Status,
				Description: desc,
				Err:         err,
			}
		}
		return "", err
	}

	if resp == nil || resp.Sid == nil || *resp.Sid == "" {
		return "", ErrNoSID
	}
	return *resp.Sid, nil
}
