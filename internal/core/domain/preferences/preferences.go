package preferences

import "context"

type Key string

const (
	KeyPasswordResetSubject = Key("EML.PRS.SUB")
	KeyPasswordResetBody    = Key("EML.PRS.BDY")
)

// Preferences resolves textual keys to configured values, e.g. mail
// subject and body templates.
type Preferences interface {
	Get(ctx context.Context, key Key) (string, error)
}
