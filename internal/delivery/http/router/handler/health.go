package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Liveness answers the plaintext root probe.
func Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "Bookshelf server is cooking...")
}
