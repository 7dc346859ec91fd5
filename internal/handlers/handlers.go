package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"userpoint/internal/model"
)

type UserService interface {
	Create(params *model.CreateUserParams) (*model.User, error)
	UpdateStatus(userID model.UserID, newStatus string) (*model.User, error)
	Fetch(userID model.UserID) (*model.User, error)
}

type TokenVerifier interface {
	Verify(tokenString string) (model.UserID, error)
}

// response is the envelope every endpoint answers with. StatusCode
// always matches the HTTP status of the response.
type response struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Distance   string      `json:"distance,omitempty"`
}

// BearerToken extracts the credential from the Authorization header.
// A missing header or a non-Bearer scheme both report as
// model.ErrorMissingAuthorization, before any verification is attempted.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", model.ErrorMissingAuthorization
	}
	credential, found := strings.CutPrefix(header, "Bearer ")
	if !found || credential == "" {
		return "", model.ErrorMissingAuthorization
	}
	return credential, nil
}

// subject resolves the authenticated user from the request's bearer
// credential. Verification is stateless; the store is not consulted.
func subject(c echo.Context, tokens TokenVerifier) (model.UserID, error) {
	credential, err := BearerToken(c)
	if err != nil {
		return "", err
	}
	return tokens.Verify(credential)
}

// fail translates an error into the response envelope. Credential
// failures collapse to a generic verification message; unknown users
// report 404; everything else passes the underlying message through as
// a 400.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrorUserNotFound):
		return c.JSON(http.StatusNotFound, response{StatusCode: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, model.ErrorInvalidToken), errors.Is(err, model.ErrorTokenExpired):
		return c.JSON(http.StatusBadRequest, response{StatusCode: http.StatusBadRequest, Message: model.ErrorInvalidToken.Error()})
	default:
		return c.JSON(http.StatusBadRequest, response{StatusCode: http.StatusBadRequest, Message: err.Error()})
	}
}
