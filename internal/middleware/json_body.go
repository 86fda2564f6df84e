package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
)

// jsonBodyKey marks requests whose body held a JSON document.
const jsonBodyKey = "json_body"

// ParseJSON checks the body of every application/json request before
// routing, so a malformed document is answered with 400 whatever the path.
// Only objects and arrays are accepted at the top level.  An empty or
// blank body is treated as no body.  Requests of other content types pass
// through unparsed.  It must run after BodyLimit so oversized bodies are
// cut off with 413.
func ParseJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.Body == http.NoBody || !isJSON(req) {
				return next(c)
			}
			b, err := io.ReadAll(req.Body)
			_ = req.Body.Close()
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					return he
				}
				return echo.NewHTTPError(http.StatusBadRequest, "unable to read request body").SetInternal(err)
			}
			b = bytes.TrimSpace(b)
			if len(b) == 0 {
				req.Body = http.NoBody
				req.ContentLength = 0
				return next(c)
			}
			if (b[0] != '{' && b[0] != '[') || !json.Valid(b) {
				return echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body")
			}
			req.Body = io.NopCloser(bytes.NewReader(b))
			req.ContentLength = int64(len(b))
			c.Set(jsonBodyKey, true)
			return next(c)
		}
	}
}

// HasJSONBody reports whether ParseJSON accepted a JSON document for the
// current request.
func HasJSONBody(c echo.Context) bool {
	ok, _ := c.Get(jsonBodyKey).(bool)
	return ok
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get(echo.HeaderContentType))
	return err == nil && mt == echo.MIMEApplicationJSON
}
