package auth

import "time"

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsStaff      bool       `json:"isStaff"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// HasUsablePassword reports whether a credential secret has been set.
// An empty hash means the account was created without one and the
// provisioning default may still be applied.
func (u User) HasUsablePassword() bool {
	return u.PasswordHash != ""
}
