package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobtracker/internal/auth"
	"jobtracker/internal/errors"
)

// ClaimsContextKey is where the JWT middleware stores the caller's claims.
const ClaimsContextKey = "user"

// ToHTTPError converts a domain error into an echo error carrying an ErrorResponse body.
func ToHTTPError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return ToHTTPError(&errors.ValidationError{Message: "request body is invalid"})
	}
	if err := c.Validate(req); err != nil {
		return ToHTTPError(err)
	}
	return nil
}

func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ClaimsContextKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, errors.ErrUnauthorized
	}
	return claims, nil
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := claims.UserID()
	if err != nil {
		return uuid.Nil, errors.ErrUnauthorized
	}
	return id, nil
}

// Malformed ids are reported as missing records.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrNotFound
	}
	return id, nil
}
