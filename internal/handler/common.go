// Package handler contains the echo HTTP handlers. They bind request
// bodies, delegate to the service layer and translate errors into
// status codes: validation failures map to 400, missing entities to
// 404, conflicting state to 409 and anything else to 500.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/validate"
)

// parseID reads the :id path parameter as an unsigned integer.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrCustomerNotFound) ||
		errors.Is(err, repository.ErrRoomNotFound) ||
		errors.Is(err, repository.ErrReservationNotFound) ||
		errors.Is(err, repository.ErrServiceNotFound)
}

// respondError maps a service error to an HTTP response.
func respondError(c echo.Context, err error) error {
	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message, "field": ve.Field})
	case isNotFound(err):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
