package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bharat-health-buddy/api/internal/repository"
)

// HospitalHandler serves the static hospital directory.
type HospitalHandler struct {
	Repo *repository.HospitalRepo
}

// NewHospitalHandler constructs a HospitalHandler and panics if repo is nil.
func NewHospitalHandler(repo *repository.HospitalRepo) *HospitalHandler {
	if repo == nil {
		panic("nil repository passed to NewHospitalHandler")
	}
	return &HospitalHandler{Repo: repo}
}

// List handles GET /api/hospitals and returns the fixed two-entry list.
func (h *HospitalHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Repo.List())
}

// Nearby handles GET /api/nearby-hospitals?lat=..&lon=..  Both coordinates
// are required and must parse as numbers.
func (h *HospitalHandler) Nearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "lat must be a number")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "lon must be a number")
	}
	return c.JSON(http.StatusOK, h.Repo.Nearby(lat, lon))
}
