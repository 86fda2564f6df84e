package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// RootMessage is the banner returned by GET /.
const RootMessage = "Bharat Health Buddy API running"

// Root answers GET / with the service banner as plain text.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, RootMessage)
}

// Health is a liveness probe for load balancers and orchestrators.  It
// returns a plain text "ok" with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
