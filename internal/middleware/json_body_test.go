package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bharat-health-buddy/api/internal/middleware"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     int
		wantJSON    bool
		wantBody    string
	}{
		{"object", echo.MIMEApplicationJSON, `{"a":1}`, 0, true, `{"a":1}`},
		{"array", echo.MIMEApplicationJSON, ` [1] `, 0, true, `[1]`},
		{"blank", echo.MIMEApplicationJSON, "  \n", 0, false, ``},
		{"string literal", echo.MIMEApplicationJSON, `"x"`, http.StatusBadRequest, false, ``},
		{"truncated", echo.MIMEApplicationJSON, `{"a":`, http.StatusBadRequest, false, ``},
		{"not json content type", echo.MIMETextPlain, `{"a":`, 0, false, `{"a":`},
		{"json suffix type", "application/vnd.api+json", `{`, 0, false, `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, tt.contentType)
			c := e.NewContext(req, httptest.NewRecorder())

			var seenJSON bool
			var seenBody string
			next := func(c echo.Context) error {
				seenJSON = middleware.HasJSONBody(c)
				b, _ := io.ReadAll(c.Request().Body)
				seenBody = string(b)
				return nil
			}

			err := middleware.ParseJSON()(next)(c)
			if tt.wantErr != 0 {
				he, ok := err.(*echo.HTTPError)
				if !ok || he.Code != tt.wantErr {
					t.Fatalf("expected HTTP error %d, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seenJSON != tt.wantJSON {
				t.Errorf("HasJSONBody = %v, want %v", seenJSON, tt.wantJSON)
			}
			if seenBody != tt.wantBody {
				t.Errorf("handler saw body %q, want %q", seenBody, tt.wantBody)
			}
		})
	}
}
