package api

import (
	"net/http"
	"time"

	reqdto "beauty-booking/internal/handler/dto/request"
	resdto "beauty-booking/internal/handler/dto/response"
	"beauty-booking/internal/handler/httperr"
	"beauty-booking/internal/handler/middleware"
	"beauty-booking/internal/pkg/config"
	"beauty-booking/internal/pkg/cookie"
	"beauty-booking/internal/pkg/errs"
	"beauty-booking/internal/usecase/commands"
	"beauty-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds   commands.AuthCommands
	q      queries.UserQueries
	cookie config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:   cmds,
		q:      q,
		cookie: cfg.Cookie,
	}
}

// @Summary Register
// @Description Create a client account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	registration, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	created, err := h.cmds.Register(c.Request.Context(), registration)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthenticatedUser(created))
}

// @Summary User login
// @Description Login with email and password. The session token is set as an HttpOnly cookie and returned in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), credentials)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cookie, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary User logout
// @Description Revoke the current session and clear the cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if token == "" {
		token = cookie.GetSessionToken(c)
	}

	if token != "" {
		if err := h.cmds.Logout(c.Request.Context(), token); err != nil {
			httperr.AbortWithUsecaseError(c, err)
			return
		}
	}

	cookie.ClearSessionCookie(c, h.cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	resp, err := resdto.FromUserView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map user view"), "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
