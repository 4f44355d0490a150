package api

import (
	"errors"
	"net/http"

	reqdto "beautyverse-storefront/internal/handler/dto/request"
	resdto "beautyverse-storefront/internal/handler/dto/response"
	"beautyverse-storefront/internal/handler/httperr"
	"beautyverse-storefront/internal/handler/middleware"
	"beautyverse-storefront/internal/infra/apiclient"
	"beautyverse-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// @Summary Log in
// @Description Log in against the backend and keep the session for this browser
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res := sf.Session.Login(c.Request.Context(), req.Username, req.Password)
	if !res.Success {
		httperr.AbortWithError(c, authFailureStatus(res.Err, http.StatusUnauthorized), res.Err, res.Message, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(sf.Session))
}

// @Summary Register
// @Description Create a customer account; the user logs in afterwards
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	res := sf.Session.Register(c.Request.Context(), req.ToInput())
	if !res.Success {
		httperr.AbortWithError(c, authFailureStatus(res.Err, http.StatusBadRequest), res.Err, res.Message, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.AuthResultResponse{Success: true, Message: res.Message})
}

// @Summary Log out
// @Description Clear the identity and tokens of this browser
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	if err := sf.Session.Logout(c.Request.Context()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Description Who this browser is logged in as; anonymous is not an error
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sf, ok := middleware.RequireStorefront(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(sf.Session))
}

// authFailureStatus keeps the form message but picks the status from the
// cause. Rejections by the backend use fallback.
func authFailureStatus(err error, fallback int) int {
	var apiErr *apiclient.APIError
	switch {
	case err == nil:
		return fallback
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, apiclient.ErrTransport), errs.Is(err, apiclient.ErrUnexpectedPayload):
		return http.StatusBadGateway
	case errors.As(err, &apiErr):
		if apiErr.Status >= http.StatusInternalServerError {
			return http.StatusBadGateway
		}
		return fallback
	default:
		return http.StatusInternalServerError
	}
}
