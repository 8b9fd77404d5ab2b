package controllers

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// validationMessage unwraps the echo error produced by CustomValidator.
func validationMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
