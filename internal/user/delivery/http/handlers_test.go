package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-tracker/internal/user"
	pkgErrors "inventory-tracker/pkg/errors"
	"inventory-tracker/pkg/log"
	"inventory-tracker/pkg/scope"
)

type fakeUseCase struct {
	signup user.SignupInput
	err    error
}

func (f *fakeUseCase) Signup(ctx context.Context, in user.SignupInput) (user.SignupOutput, error) {
	f.signup = in
	if f.err != nil {
		return user.SignupOutput{}, f.err
	}
	return user.SignupOutput{
		User:   user.User{ID: 3, Username: *in.Username, Email: in.Email, PasswordHash: "$2a$hash"},
		Tokens: scope.TokenPair{Access: "acc", Refresh: "ref"},
	}, nil
}

func (f *fakeUseCase) VerifyToken(ctx context.Context, in user.VerifyTokenInput) error {
	return f.err
}

func (f *fakeUseCase) RefreshToken(ctx context.Context, in user.RefreshTokenInput) (user.RefreshTokenOutput, error) {
	if f.err != nil {
		return user.RefreshTokenOutput{}, f.err
	}
	return user.RefreshTokenOutput{Access: "new-" + in.Refresh}, nil
}

func setupRouter(uc user.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)

	r := gin.New()
	r.POST("/auth/signup/", h.Signup)
	r.POST("/auth/token/verify/", h.VerifyToken)
	r.POST("/auth/token/refresh/", h.RefreshToken)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupHandler(t *testing.T) {
	uc := &fakeUseCase{}
	r := setupRouter(uc)

	w := post(r, "/auth/signup/",
		`{"username":"alice","email":"a@example.com","password":"pw-12345678","password_confirm":"pw-12345678"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, uc.signup.PasswordConfirm)
	assert.Equal(t, "pw-12345678", *uc.signup.PasswordConfirm)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "acc", body["access"])
	assert.Equal(t, "ref", body["refresh"])
	assert.EqualValues(t, 3, body["id"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, w.Body.String(), "$2a$hash")
}

func TestSignupHandlerMissingConfirmStaysNil(t *testing.T) {
	uc := &fakeUseCase{}
	r := setupRouter(uc)

	post(r, "/auth/signup/", `{"username":"alice","password":"pw-12345678"}`)
	assert.Nil(t, uc.signup.PasswordConfirm)
}

func TestSignupHandlerTrimsIdentity(t *testing.T) {
	uc := &fakeUseCase{}
	r := setupRouter(uc)

	w := post(r, "/auth/signup/",
		`{"username":" bob ","email":" bob@example.com","password":" pw-12345678 ","first_name":" Bob"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, uc.signup.Username)
	assert.Equal(t, "bob", *uc.signup.Username)
	assert.Equal(t, "bob@example.com", uc.signup.Email)
	assert.Equal(t, "Bob", uc.signup.FirstName)
	require.NotNil(t, uc.signup.Password)
	assert.Equal(t, " pw-12345678 ", *uc.signup.Password)
}

func TestSignupHandlerValidation(t *testing.T) {
	uc := &fakeUseCase{err: pkgErrors.NewValidationError(user.KeyPasswordConfirm, user.MsgPasswordMismatch)}
	r := setupRouter(uc)

	w := post(r, "/auth/signup/", `{"username":"alice","password":"a","password_confirm":"b"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"Password Confirm":["Passwords do not match"]}`, w.Body.String())
}

func TestSignupHandlerBadJSON(t *testing.T) {
	r := setupRouter(&fakeUseCase{})

	w := post(r, "/auth/signup/", `{"username":42}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["username"])
}

func TestVerifyHandler(t *testing.T) {
	w := post(setupRouter(&fakeUseCase{}), "/auth/token/verify/", `{"token":"abc"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	w = post(setupRouter(&fakeUseCase{err: user.ErrInvalidToken}), "/auth/token/verify/", `{"token":"abc"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Token is invalid or expired","code":"token_not_valid"}`, w.Body.String())

	w = post(setupRouter(&fakeUseCase{}), "/auth/token/verify/", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshHandler(t *testing.T) {
	w := post(setupRouter(&fakeUseCase{}), "/auth/token/refresh/", `{"refresh":"r1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"access":"new-r1"}`, w.Body.String())

	w = post(setupRouter(&fakeUseCase{err: user.ErrInvalidToken}), "/auth/token/refresh/", `{"refresh":"r1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
