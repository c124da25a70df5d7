package domain

import "time"

type Role string

const (
	RoleOrganizer   Role = "organizer"
	RoleParticipant Role = "participant"
)

type User struct {
	ID                   string     `json:"id"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	Email                string     `json:"email"`
	Role                 Role       `json:"role"`
	PasswordHash         string     `json:"-"`
	RefreshToken         *string    `json:"-"`
	ResetPasswordToken   *string    `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
}

// TokenPair is an access/refresh token pair issued at signup, login and
// refresh. The refresh token is also persisted on the user row so it can be
// rotated and revoked.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
