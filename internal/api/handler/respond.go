package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform success body: {success, message, data?}.
// Errors are rendered by the central HTTP error handler with the same shape.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}
