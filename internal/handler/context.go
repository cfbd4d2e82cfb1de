package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"sidehustle/internal/auth"
	apperrors "sidehustle/internal/errors"
	"sidehustle/internal/model"
)

// ContextKeyClaims is where the auth middleware stores verified *auth.Claims.
const ContextKeyClaims = "user"

// CookieName is the cookie that carries the identity token.
const CookieName = "auth-token"

// PrincipalFrom returns the verified identity attached to the request, if any.
func PrincipalFrom(c echo.Context) (*model.Principal, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*auth.Claims)
	if !ok || claims == nil {
		return nil, false
	}
	p := claims.Principal()
	return &p, true
}

// validationError turns validator output into a 400 naming the first offending field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return apperrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing required field: %s", fe.Field()))
	}
	return apperrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid value for field: %s", fe.Field()))
}
