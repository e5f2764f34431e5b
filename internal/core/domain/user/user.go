package user

import (
	"crypto/subtle"
	"fmt"
	c "passport/internal/core/domain/common"
	e "passport/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

// ResetCodeValidFor is the window during which a pending reset code
// can be redeemed.
const ResetCodeValidFor = 10 * time.Minute

type User struct {
	ID               ID
	Email            c.Optional[c.Email]
	Name             string
	PasswordHash     c.Optional[PasswordHash]
	APIToken         c.Optional[SessionToken]
	CreatedAt        time.Time
	ResetCode        c.Optional[ResetCode]
	ResetCodeTimeout c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Email.IsPresent && !u.PasswordHash.IsPresent {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.ResetCode.IsPresent != u.ResetCodeTimeout.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("reset code and reset code timeout must be set together for user %d", u.ID),
		)
	}
	return nil
}

func (u *User) HasPendingReset() bool {
	return u.ResetCode.IsPresent && u.ResetCodeTimeout.IsPresent
}

// PendingResetMatches reports whether the supplied code redeems the
// user's pending reset. The code comparison is constant-time and the
// expiry check is strict: a code presented at the exact timeout
// instant is already expired.
func (u *User) PendingResetMatches(code ResetCode, now time.Time) bool {
	if !u.HasPendingReset() {
		return false
	}
	codesEqual := subtle.ConstantTimeCompare([]byte(u.ResetCode.Value), []byte(code)) == 1
	return codesEqual && now.Before(u.ResetCodeTimeout.Value)
}
