package request

import (
	"github.com/rs/zerolog"
)

// Register is the registration form. ConfirmPassword never leaves the client;
// the payload sent to the API carries fullName, email, password and phone.
type Register struct {
	FullName        string `validate:"required"         json:"fullName"`
	Email           string `validate:"required,email"   json:"email"`
	Password        string `validate:"required,min=6"   json:"password"`
	ConfirmPassword string `validate:"eqfield=Password" json:"-"`
	Phone           string `                            json:"phone"`
}

// MarshalZerologObject keeps passwords out of the log file.
func (r Register) MarshalZerologObject(e *zerolog.Event) {
	e.Str("fullName", r.FullName).Str("email", r.Email).Str("phone", r.Phone)
}
