package response

import (
	"passport/internal/core/domain/user"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     *string   `json:"email,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	if du.Email.IsPresent {
		email := string(du.Email.Value)
		u.Email = &email
	}
	u.Name = du.Name
	u.CreatedAt = du.CreatedAt
}
