package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendRequestValid(t *testing.T) {
	tests := []struct {
		name string
		req  SendRequest
		want bool
	}{
		{"both set", SendRequest{Message: "hi", PhoneNumber: "+15551234567"}, true},
		{"padded values are still valid", SendRequest{Message: " hi ", PhoneNumber: " +1555 "}, true},
		{"empty message", SendRequest{PhoneNumber: "+15551234567"}, false},
		{"whitespace message", SendRequest{Message: " \t\n", PhoneNumber: "+15551234567"}, false},
		{"empty phone", SendRequest{Message: "hi"}, false},
		{"whitespace phone", SendRequest{Message: "hi", PhoneNumber: "   "}, false},
		{"both empty", SendRequest{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Valid())
		})
	}
}

func TestWebhookRequestSendRequest(t *testing.T) {
	data := &WebhookData{PhoneNumber: "+15551234567", Message: "Welcome!"}

	tests := []struct {
		name   string
		req    WebhookRequest
		wantOK bool
	}{
		{"new signup", WebhookRequest{Event: EventNewSignup, Data: data}, true},
		{"other event", WebhookRequest{Event: "other", Data: data}, false},
		{"event is case sensitive", WebhookRequest{Event: "NEW_SIGNUP", Data: data}, false},
		{"missing data", WebhookRequest{Event: EventNewSignup}, false},
		{"empty message", WebhookRequest{Event: EventNewSignup, Data: &WebhookData{PhoneNumber: "+1555"}}, false},
		{"blank phone", WebhookRequest{Event: EventNewSignup, Data: &WebhookData{PhoneNumber: " ", Message: "hi"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.req.SendRequest()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, SendRequest{Message: "Welcome!", PhoneNumber: "+15551234567"}, got)
			} else {
				assert.Zero(t, got)
			}
		})
	}
}
