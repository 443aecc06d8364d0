package entity

type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleHandler UserRole = "handler"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	Base
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

// HasPhone reports whether an SMS can be sent to this user.
func (u *User) HasPhone() bool {
	return u.Phone != nil && *u.Phone != ""
}
