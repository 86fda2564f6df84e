package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bharat-health-buddy/api/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{echo.HeaderContentType: []string{echo.MIMEApplicationJSON}}
	body := []byte(`[{"name":"AIIMS Delhi"}]`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(bs)
	if !ok {
		t.Fatal("decode failed")
	}
	if status != http.StatusOK || gotHdr.Get(echo.HeaderContentType) != echo.MIMEApplicationJSON || string(gotBody) != string(body) {
		t.Errorf("round trip mismatch: %d %v %q", status, gotHdr, gotBody)
	}
}

func TestDecodePayload_Corrupt(t *testing.T) {
	for _, bs := range [][]byte{nil, []byte("short"), {0, 0, 0, 200, 0, 0, 1, 0, '{'}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("expected failure for %v", bs)
		}
	}
}

func TestCacheKey(t *testing.T) {
	e := echo.New()
	newCtx := func(method, target, route string) echo.Context {
		req := httptest.NewRequest(method, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath(route)
		return c
	}

	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	a := cacheKey(cfg, newCtx(http.MethodGet, "/api/nearby-hospitals?lat=1&lon=2", "/api/nearby-hospitals"))
	b := cacheKey(cfg, newCtx(http.MethodGet, "/api/nearby-hospitals?lat=3&lon=4", "/api/nearby-hospitals"))
	if a == b {
		t.Error("route_query keys must differ by query")
	}
	if !strings.HasPrefix(a, "cache:") {
		t.Errorf("key %q lacks prefix", a)
	}

	cfg.KeyStrategy = "route"
	a = cacheKey(cfg, newCtx(http.MethodGet, "/api/health-camps?x=1", "/api/health-camps"))
	b = cacheKey(cfg, newCtx(http.MethodGet, "/api/health-camps?x=2", "/api/health-camps"))
	if a != b {
		t.Error("route keys must ignore the query")
	}

	cfg.KeyStrategy = "method_route"
	a = cacheKey(cfg, newCtx(http.MethodGet, "/api/health-camps", "/api/health-camps"))
	b = cacheKey(cfg, newCtx(http.MethodHead, "/api/health-camps", "/api/health-camps"))
	if a == b {
		t.Error("method_route keys must differ by method")
	}
}

func TestResponseCache_Disabled(t *testing.T) {
	called := 0
	next := func(c echo.Context) error {
		called++
		return c.String(http.StatusOK, "fresh")
	}
	h := ResponseCache(config.CacheConfig{Enabled: false}, nil)(next)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	if called != 1 || rec.Header().Get("X-Cache") != "" {
		t.Errorf("disabled cache should pass through untouched, called=%d header=%q", called, rec.Header().Get("X-Cache"))
	}
}

func TestCaptureWriter_Limit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	_, _ = cw.Write([]byte("abc"))
	_, _ = cw.Write([]byte("def"))

	if cw.buf.String() != "abcd" {
		t.Errorf("captured %q, want %q", cw.buf.String(), "abcd")
	}
	if cw.size != 6 || rec.Body.String() != "abcdef" {
		t.Errorf("client must receive the whole body: size=%d body=%q", cw.size, rec.Body.String())
	}
}
