package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bharat-health-buddy/api/internal/middleware"
	"github.com/bharat-health-buddy/api/internal/model"
	"github.com/bharat-health-buddy/api/internal/repository"
)

// CareHandler exposes the symptom checker, home remedies and health camps.
type CareHandler struct {
	Repo *repository.CareRepo
}

// NewCareHandler constructs a CareHandler and panics if repo is nil.
func NewCareHandler(repo *repository.CareRepo) *CareHandler {
	if repo == nil {
		panic("nil repository passed to NewCareHandler")
	}
	return &CareHandler{Repo: repo}
}

// Symptoms handles POST /api/symptoms with a body of {"symptoms": [...]}.
// A missing list is treated as empty; a list of non-strings is a 400.
func (h *CareHandler) Symptoms(c echo.Context) error {
	var body model.SymptomRequest
	if middleware.HasJSONBody(c) {
		if err := c.Bind(&body); err != nil {
			return err
		}
	}
	return c.JSON(http.StatusOK, h.Repo.CheckSymptoms(body.Symptoms))
}

// Remedies handles GET /api/home-remedies/:condition.
func (h *CareHandler) Remedies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Repo.Remedies(c.Param("condition")))
}

// HealthCamps handles GET /api/health-camps.
func (h *CareHandler) HealthCamps(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Repo.HealthCamps())
}
