package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobtracker/internal/model"
	"jobtracker/internal/service"
)

// CookieConfig controls the session cookie written on login.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookie      CookieConfig
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	OK          bool   `json:"ok"`
	AccessToken string `json:"accessToken"`
}

// OKResponse acknowledges an action without payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

// MeResponse describes the authenticated user.
type MeResponse struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return ToHTTPError(err)
	}

	c.SetCookie(h.sessionCookie(result.AccessToken, result.ExpiresAt))
	return c.JSON(http.StatusOK, LoginResponse{
		OK:          true,
		AccessToken: result.AccessToken,
	})
}

// Logout godoc
// @Summary Logout user
// @Description Revokes the presented token and clears the session cookie.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OKResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return ToHTTPError(err)
	}
	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return ToHTTPError(err)
	}

	expired := h.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	c.SetCookie(expired)
	return c.JSON(http.StatusOK, OKResponse{OK: true})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return ToHTTPError(err)
	}
	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, MeResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
