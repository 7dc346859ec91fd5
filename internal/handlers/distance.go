package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"userpoint/pkg/geo"
)

func Distance(userService UserService, tokens TokenVerifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := subject(c, tokens)
		if err != nil {
			return fail(c, err)
		}

		user, err := userService.Fetch(userID)
		if err != nil {
			return fail(c, err)
		}

		destLat, err := strconv.ParseFloat(c.QueryParam("destinationLatitude"), 64)
		if err != nil {
			return fail(c, fmt.Errorf("parsing destinationLatitude: %w", err))
		}
		destLon, err := strconv.ParseFloat(c.QueryParam("destinationLongitude"), 64)
		if err != nil {
			return fail(c, fmt.Errorf("parsing destinationLongitude: %w", err))
		}

		distance := geo.Distance(user.Latitude, user.Longitude, destLat, destLon)

		return c.JSON(http.StatusOK, response{
			StatusCode: http.StatusOK,
			Message:    "Distance calculated successfully",
			Distance:   fmt.Sprintf("%vkm", distance),
		})
	}
}
