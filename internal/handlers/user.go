package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"userpoint/internal/model"
)

// createResponse keeps the data field present (null on failure) to
// match the registration response contract.
type createResponse struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

func CreateUser(userService UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreateUserParams{}
		if err := c.Bind(params); err != nil {
			return c.JSON(http.StatusBadRequest, createResponse{StatusCode: http.StatusBadRequest, Message: err.Error()})
		}

		user, err := userService.Create(params)
		if err != nil {
			return c.JSON(http.StatusBadRequest, createResponse{StatusCode: http.StatusBadRequest, Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, createResponse{
			StatusCode: http.StatusCreated,
			Message:    "User created successfully",
			Data:       user,
		})
	}
}

type updateStatusParams struct {
	NewStatus string `json:"newStatus"`
}

func UpdateStatus(userService UserService, tokens TokenVerifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := subject(c, tokens)
		if err != nil {
			return fail(c, err)
		}

		params := &updateStatusParams{}
		if err := c.Bind(params); err != nil {
			return fail(c, err)
		}

		if _, err := userService.UpdateStatus(userID, params.NewStatus); err != nil {
			return fail(c, err)
		}

		return c.JSON(http.StatusOK, response{
			StatusCode: http.StatusOK,
			Message:    "User status updated successfully",
		})
	}
}
