package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/model"
	"sidehustle/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService  service.AuthService
	audit        service.AuditRecorder
	tokenTTL     time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, audit service.AuditRecorder, tokenTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		audit:        audit,
		tokenTTL:     tokenTTL,
		cookieSecure: cookieSecure,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the data of a successful login.
type LoginResponse struct {
	User  model.Principal `json:"user"`
	Token string          `json:"token"`
}

// Login godoc
// @Summary Login
// @Description Issues an identity token and sets it as the auth-token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} errors.Response{data=LoginResponse}
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	ctx := c.Request().Context()
	token, principal, err := h.authService.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.tokenCookie(token, int(h.tokenTTL.Seconds())))
	h.audit.Record(ctx, model.AuditLog{Action: model.AuditLogin, Actor: principal.Email})

	return c.JSON(http.StatusOK, apperrors.OK(LoginResponse{User: *principal, Token: token}, ""))
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented token, if any, and clears the auth-token cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := h.authService.Logout(ctx, PresentedToken(c))
	if err != nil {
		return err
	}

	c.SetCookie(h.tokenCookie("", -1))
	if principal != nil {
		h.audit.Record(ctx, model.AuditLog{Action: model.AuditLogout, Actor: principal.Email})
	}

	return c.JSON(http.StatusOK, apperrors.OK(nil, "logged out"))
}

// Me godoc
// @Summary Current identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response{data=model.Principal}
// @Failure 401 {object} errors.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	principal, ok := PrincipalFrom(c)
	if !ok {
		return apperrors.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, apperrors.OK(principal, ""))
}

// tokenCookie builds the auth cookie. maxAge < 0 deletes it.
func (h *AuthHandler) tokenCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	}
}

// PresentedToken finds the token the same way the auth middleware does:
// bearer header first, then cookie.
func PresentedToken(c echo.Context) string {
	const prefix = "Bearer "
	if h := c.Request().Header.Get(echo.HeaderAuthorization); len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	if cookie, err := c.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}
