package router // package router builds the echo instance and registers the API routes

import (
	"errors"   // errors unwraps framework errors in the error handler
	"net/http" // net/http provides status codes and method names

	"github.com/labstack/echo/v4"                   // echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // echo's stock middleware
	"github.com/labstack/gommon/log"                // echo's logger levels

	"github.com/bharat-health-buddy/api/internal/config"     // runtime configuration
	"github.com/bharat-health-buddy/api/internal/handler"    // route handlers
	"github.com/bharat-health-buddy/api/internal/middleware" // JSON parsing and response cache
	"github.com/bharat-health-buddy/api/internal/repository" // static reference data
)

// Deps carries the optional infrastructure wired into the routes.  The zero
// value disables both the response cache and chat events.
type Deps struct {
	Cache  middleware.CacheStore // backs the response cache when cfg.Cache.Enabled
	Events handler.ChatPublisher // receives chat events when cfg.Events.Enabled
}

// New returns an echo instance with global middleware installed and every
// route registered.
func New(cfg config.Config, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(parseLevel(cfg.LogLevel))
	e.HTTPErrorHandler = notFoundForMethodMismatch(e)

	// CORS and body handling run before routing so unknown paths also reject
	// bad JSON, and those rejections still carry the CORS header.
	e.Pre(middleware.CORS())
	e.Pre(echomw.BodyLimit(cfg.BodyLimit))
	e.Pre(middleware.ParseJSON())

	e.Use(echomw.Recover())

	var events handler.ChatPublisher
	if cfg.Events.Enabled {
		events = deps.Events
	}
	cache := middleware.ResponseCache(cfg.Cache, deps.Cache)

	RegisterRoutes(e)
	RegisterAPI(e, handler.NewChatHandler(events), cache)
	return e
}

// readMethods is registered for every read route; HEAD answers like GET
// without a body.
var readMethods = []string{http.MethodGet, http.MethodHead}

// RegisterRoutes registers the banner and the liveness probe.
func RegisterRoutes(e *echo.Echo) {
	e.Match(readMethods, "/", handler.Root)
	e.Match(readMethods, "/healthz", handler.Health)
}

// RegisterAPI registers the /api routes.  cache wraps the routes that serve
// static data.
func RegisterAPI(e *echo.Echo, chat *handler.ChatHandler, cache echo.MiddlewareFunc) {
	hospitals := handler.NewHospitalHandler(repository.NewHospitalRepo())
	care := handler.NewCareHandler(repository.NewCareRepo())

	g := e.Group("/api")
	g.POST("/chat", chat.Chat)
	g.POST("/symptoms", care.Symptoms)

	g.Match(readMethods, "/hospitals", hospitals.List, cache)
	g.Match(readMethods, "/nearby-hospitals", hospitals.Nearby, cache)
	g.Match(readMethods, "/home-remedies/:condition", care.Remedies, cache)
	g.Match(readMethods, "/health-camps", care.HealthCamps, cache)
}

// notFoundForMethodMismatch answers a known path requested with an
// unsupported method as 404, the same as an unknown path.
func notFoundForMethodMismatch(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusMethodNotAllowed {
			c.Response().Header().Del(echo.HeaderAllow)
			err = echo.ErrNotFound
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func parseLevel(s string) log.Lvl {
	switch s {
	case "debug", "DEBUG":
		return log.DEBUG
	case "warn", "WARN":
		return log.WARN
	case "error", "ERROR":
		return log.ERROR
	case "off", "OFF":
		return log.OFF
	default:
		return log.INFO
	}
}
