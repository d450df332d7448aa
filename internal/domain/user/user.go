package user

import (
	"strings"

	"github.com/example/reserva-rapida/internal/internaltypes"
)

const MinPasswordLen = 6

// Profile is the signed-in user as shown on the profile tab.
type Profile struct {
	Name  string
	Email string
}

// MockProfile is the profile displayed when the session carries no name.
var MockProfile = Profile{Name: "Erison Oliveira", Email: "e.olivera.sousa@gmail.com"}

// LoginForm accepts any non-empty pair; there is no real authentication.
type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Validate() error {
	if strings.TrimSpace(f.Email) == "" || f.Password == "" {
		return internaltypes.Invalid("", "Fill in email and password (any value works for testing).")
	}
	return nil
}

type SignupForm struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

func (f SignupForm) Validate() error {
	if f.Password != f.Confirm {
		return internaltypes.Invalid("confirm", "Passwords do not match!")
	}
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || len(f.Password) < MinPasswordLen {
		return internaltypes.Invalid("", "Please fill in every field and use a password of at least 6 characters.")
	}
	return nil
}
