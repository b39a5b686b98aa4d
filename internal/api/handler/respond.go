package handler

import "github.com/labstack/echo/v4"

// envelope is the uniform response body for every endpoint. The status
// field always mirrors the transport status code.
type envelope struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Message: message, Status: status, Data: data})
}
