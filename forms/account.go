package forms

import (
	"strings"
	"yatube/models"
)

type SignupForm struct {
	FirstName string `form:"first_name" json:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" json:"last_name" validate:"max=150"`
	Username  string `form:"username" json:"username" validate:"required,max=150,username"`
	Email     string `form:"email" json:"email" validate:"omitempty,email"`
	Password1 string `form:"password1" json:"-" validate:"required,min=8"`
	Password2 string `form:"password2" json:"-" validate:"required,eqfield=Password1"`
}

func (f *SignupForm) Clean() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
}

func (f *SignupForm) Validate() Errors {
	errs := validateStruct(f)
	if _, bad := errs["username"]; !bad && models.UsernameTaken(f.Username) {
		errs.Add("username", MsgUsernameTaken)
	}
	return errs
}

// Name is the display name made of the first and last name
func (f *SignupForm) Name() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

type LoginForm struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"-" validate:"required"`
}

func (f *LoginForm) Clean() {
	f.Username = strings.TrimSpace(f.Username)
}

func (f *LoginForm) Validate() Errors {
	return validateStruct(f)
}
