package domain

import "time"

// Admin-console roles. Admins manage users and the publish schedule;
// editors only work on content.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is an admin-console account. Locale selects the language the
// console (and schedule descriptions) are shown in for this user.
type User struct {
	Username  string    `db:"username"`
	Password  string    `db:"password"` // bcrypt hashed
	Role      string    `db:"role"`
	Locale    string    `db:"locale"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func NewUser(username, hashedPassword, role, locale string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Password:  hashedPassword,
		Role:      role,
		Locale:    locale,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin reports whether the user may manage accounts and settings.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the known console roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}
