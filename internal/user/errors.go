package user

import "errors"

var (
	ErrInvalidToken = errors.New("token is invalid or expired")
)

// Field keys that differ from the payload keys.
const (
	KeyPasswordConfirm = "Password Confirm"
	KeyEmail           = "Email"
	KeyUsername        = "Username"
)

const (
	MsgRequired               = "This field is required."
	MsgBlank                  = "This field may not be blank."
	MsgUsernameInvalid        = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	MsgUsernameTooLong        = "Ensure this field has no more than 150 characters."
	MsgNameTooLong            = "Ensure this field has no more than 150 characters."
	MsgEmailInvalid           = "Enter a valid email address."
	MsgPasswordConfirmMissing = "Password Confirm: required Field missing."
	MsgPasswordMismatch       = "Passwords do not match"
	MsgEmailTaken             = "Email already registered"
	MsgUsernameTaken          = "Username already registered"
)
