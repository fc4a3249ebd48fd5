package model

// EventNewSignup is the only webhook event that triggers a send.
const EventNewSignup = "new_signup"

// SendRequest is the body of a direct send call.
type SendRequest struct {
	Message     string `json:"message"`
	PhoneNumber string `json:"phoneNumber"`
}

// Valid requires both fields to contain at least one non-whitespace character.
func (r SendRequest) Valid() bool {
	return !Blank(r.Message) && !Blank(r.PhoneNumber)
}

type WebhookData struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

// WebhookRequest is an inbound event callback. Data is nil when absent or null.
type WebhookRequest struct {
	Event string       `json:"event"`
	Data  *WebhookData `json:"data"`
}

// SendRequest returns the send carried by a new_signup event.
// ok is false for any other event, a missing data object, or blank fields.
func (r WebhookRequest) SendRequest() (SendRequest, bool) {
	if r.Event != EventNewSignup || r.Data == nil {
		return SendRequest{}, false
	}
	req := SendRequest{Message: r.Data.Message, PhoneNumber: r.Data.PhoneNumber}
	if !req.Valid() {
		return SendRequest{}, false
	}
	return req, true
}
