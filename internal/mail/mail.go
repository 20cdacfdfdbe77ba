package mail

import "context"

// Message represents one outbound transactional email
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Sender abstracts the email provider for wiring and testing
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
