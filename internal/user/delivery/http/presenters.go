package http

import (
	"strings"

	"inventory-tracker/internal/user"
)

// --- Request DTOs ---

type signupReq struct {
	Username        *string `json:"username" example:"alice"`
	Email           string  `json:"email" example:"alice@example.com"`
	Password        *string `json:"password" example:"Violet-Harbor-91"`
	PasswordConfirm *string `json:"password_confirm" example:"Violet-Harbor-91"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
}

func (r signupReq) toInput() user.SignupInput {
	return user.SignupInput{
		Username:        trimmed(r.Username),
		Email:           strings.TrimSpace(r.Email),
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
		FirstName:       strings.TrimSpace(r.FirstName),
		LastName:        strings.TrimSpace(r.LastName),
	}
}

// Passwords are kept verbatim.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

type verifyReq struct {
	Token string `json:"token"`
}

type refreshReq struct {
	Refresh string `json:"refresh"`
}

// --- Response DTOs ---

type signupResp struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
}

func (h *handler) newSignupResp(o user.SignupOutput) signupResp {
	return signupResp{
		ID:        o.User.ID,
		Username:  o.User.Username,
		Email:     o.User.Email,
		FirstName: o.User.FirstName,
		LastName:  o.User.LastName,
		Access:    o.Tokens.Access,
		Refresh:   o.Tokens.Refresh,
	}
}

type refreshResp struct {
	Access string `json:"access"`
}

func (r verifyReq) toInput() user.VerifyTokenInput {
	return user.VerifyTokenInput{Token: r.Token}
}

func (r refreshReq) toInput() user.RefreshTokenInput {
	return user.RefreshTokenInput{Refresh: r.Refresh}
}
