package usecase

import (
	"regexp"
	"unicode/utf8"

	"inventory-tracker/internal/user"
	pkgErrors "inventory-tracker/pkg/errors"
	"inventory-tracker/pkg/password"
)

const (
	maxUsernameLength = 150
	maxNameLength     = 150
	maxEmailLength    = 254
)

var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// validateFields runs the per-field checks on a signup payload.
func (uc *implUseCase) validateFields(in user.SignupInput) *pkgErrors.ValidationError {
	v := &pkgErrors.ValidationError{}

	switch {
	case in.Username == nil:
		v.Add("username", user.MsgRequired)
	case *in.Username == "":
		v.Add("username", user.MsgBlank)
	case utf8.RuneCountInString(*in.Username) > maxUsernameLength:
		v.Add("username", user.MsgUsernameTooLong)
	case !usernameRe.MatchString(*in.Username):
		v.Add("username", user.MsgUsernameInvalid)
	}

	switch {
	case in.Password == nil:
		v.Add("password", user.MsgRequired)
	case *in.Password == "":
		v.Add("password", user.MsgBlank)
	}

	if in.Email != "" {
		if len(in.Email) > maxEmailLength || uc.validate.Var(in.Email, "email") != nil {
			v.Add("email", user.MsgEmailInvalid)
		}
	}
	if utf8.RuneCountInString(in.FirstName) > maxNameLength {
		v.Add("first_name", user.MsgNameTooLong)
	}
	if utf8.RuneCountInString(in.LastName) > maxNameLength {
		v.Add("last_name", user.MsgNameTooLong)
	}

	return v
}

// validatePasswords checks confirmation and strength, stopping at the first
// failing stage.
func (uc *implUseCase) validatePasswords(in user.SignupInput) *pkgErrors.ValidationError {
	if in.PasswordConfirm == nil {
		return pkgErrors.NewValidationError(pkgErrors.NonFieldErrorsKey, user.MsgPasswordConfirmMissing)
	}
	if *in.Password != *in.PasswordConfirm {
		return pkgErrors.NewValidationError(user.KeyPasswordConfirm, user.MsgPasswordMismatch)
	}

	msgs := uc.policy.Validate(*in.Password,
		password.Attribute{Label: "username", Value: *in.Username},
		password.Attribute{Label: "email address", Value: in.Email},
		password.Attribute{Label: "first name", Value: in.FirstName},
		password.Attribute{Label: "last name", Value: in.LastName},
	)
	v := &pkgErrors.ValidationError{}
	for _, m := range msgs {
		v.Add("password", m)
	}
	return v
}
