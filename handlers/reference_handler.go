package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/polytechlab/attendgate/repository"
)

// ReferenceHandler serves the read-only master tables.
type ReferenceHandler struct {
	stores *repository.Stores
}

func NewReferenceHandler(st *repository.Stores) *ReferenceHandler {
	return &ReferenceHandler{stores: st}
}

func (h *ReferenceHandler) Periods(c echo.Context) error {
	rows, err := h.stores.Reference.Periods()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReferenceHandler) Departments(c echo.Context) error {
	rows, err := h.stores.Reference.Departments()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReferenceHandler) Terms(c echo.Context) error {
	rows, err := h.stores.Reference.Terms()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReferenceHandler) Rooms(c echo.Context) error {
	rows, err := h.stores.Reference.Rooms()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /students?department_id=
func (h *ReferenceHandler) Students(c echo.Context) error {
	if dept := atoiOr(c.QueryParam("department_id"), 0); dept != 0 {
		rows, err := h.stores.Reference.StudentsByDepartment(dept)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, rows)
	}
	rows, err := h.stores.Reference.Students()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
