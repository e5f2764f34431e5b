package email

import "context"

// Message mirrors what the email collaborator expects: a recipient,
// a display name, subject and body templates, and the parameters to
// interpolate into them.
type Message struct {
	To          string
	DisplayName string
	Subject     string
	Body        string
	Params      map[string]string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}
