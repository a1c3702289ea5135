package http

import (
	"github.com/gin-gonic/gin"

	"inventory-tracker/pkg/response"
)

// Signup godoc
// @Summary     Create an account
// @Description Registers a user and returns an access/refresh token pair.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Signup data"
// @Success     201  {object} signupResp
// @Failure     400  {object} map[string][]string "Validation errors"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/auth/signup/ [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Signup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newSignupResp(output))
}

// VerifyToken godoc
// @Summary     Verify a token
// @Description Checks the signature and expiry of an access or refresh token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body verifyReq true "Token"
// @Success     200  {object} map[string]interface{}
// @Failure     400  {object} map[string][]string "Validation errors"
// @Failure     401  {object} response.Resp "Token is invalid or expired"
// @Router      /api/auth/token/verify/ [POST]
func (h *handler) VerifyToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.VerifyToken(ctx, req.toInput()); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{})
}

// RefreshToken godoc
// @Summary     Refresh an access token
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body refreshReq true "Refresh token"
// @Success     200  {object} refreshResp
// @Failure     400  {object} map[string][]string "Validation errors"
// @Failure     401  {object} response.Resp "Token is invalid or expired"
// @Router      /api/auth/token/refresh/ [POST]
func (h *handler) RefreshToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RefreshToken(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, refreshResp{Access: output.Access})
}
