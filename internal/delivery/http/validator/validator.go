// Package validator wires go-playground/validator into echo.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts validator.Validate to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the echo server.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Struct-tag violations surface as a
// 400 echo.HTTPError carrying the validator's message.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
