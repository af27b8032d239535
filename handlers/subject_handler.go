package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/polytechlab/attendgate/models"
	"github.com/polytechlab/attendgate/repository"
)

// SubjectHandler is the subject-master admin surface.
type SubjectHandler struct {
	stores *repository.Stores
}

func NewSubjectHandler(st *repository.Stores) *SubjectHandler {
	return &SubjectHandler{stores: st}
}

// GET /subjects
func (h *SubjectHandler) List(c echo.Context) error {
	rows, err := h.stores.Subjects.List()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type subjectReq struct {
	Name         string `json:"name" validate:"required"`
	DepartmentID int    `json:"department_id" validate:"required"`
	Credits      int    `json:"credits"`
	Shared       int    `json:"shared"`
	Note         string `json:"note"`
}

// POST /subjects
func (h *SubjectHandler) Create(c echo.Context) error {
	var req subjectReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(err)
	}

	id, err := h.stores.Subjects.NextID()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	row := models.Subject{
		ID:           id,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Credits:      req.Credits,
		Shared:       req.Shared,
		Note:         req.Note,
	}
	if err := h.stores.Subjects.Create(&row); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, row)
}

// PUT /subjects/:id
func (h *SubjectHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	var req subjectReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(err)
	}

	row := models.Subject{
		ID:           id,
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Credits:      req.Credits,
		Shared:       req.Shared,
		Note:         req.Note,
	}
	err = h.stores.Subjects.Update(&row)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, row)
}

// DELETE /subjects/:id
func (h *SubjectHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}
	err = h.stores.Subjects.Delete(id)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
