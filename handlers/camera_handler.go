package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/polytechlab/attendgate/attendance"
	"github.com/polytechlab/attendgate/models"
	"github.com/polytechlab/attendgate/repository"
)

// CameraHandler records raw gate-camera observations and serves the log.
type CameraHandler struct {
	stores *repository.Stores
	now    func() time.Time
}

func NewCameraHandler(st *repository.Stores) *CameraHandler {
	return &CameraHandler{stores: st, now: time.Now}
}

type cameraReq struct {
	Source  string  `json:"source" form:"source"`
	Status  string  `json:"status" form:"status" validate:"required"`
	Marker  string  `json:"marker" form:"marker"`
	Score   float64 `json:"score" form:"score"`
	Message string  `json:"message" form:"message"`
	Ts      string  `json:"ts" form:"ts"`
}

// POST /api/camera-logs
func (h *CameraHandler) Create(c echo.Context) error {
	var req cameraReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(err)
	}

	recordedAt := attendance.FormatTimestamp(h.now())
	if req.Ts != "" {
		if ts, ok := attendance.NormalizeTimestamp(req.Ts); ok {
			recordedAt = ts
		}
	}
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = "gate-camera"
	}

	row := models.CameraLog{
		RecordedAt: recordedAt,
		Source:     source,
		Status:     strings.ToLower(strings.TrimSpace(req.Status)),
		Marker:     strings.TrimSpace(req.Marker),
		Score:      req.Score,
		Message:    strings.TrimSpace(req.Message),
	}
	if err := h.stores.Camera.Insert(&row); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, row)
}

// GET /logs/camera?limit=
func (h *CameraHandler) Recent(c echo.Context) error {
	limit := clampLimit(atoiOr(c.QueryParam("limit"), 0), 100, 1000)
	rows, err := h.stores.Camera.Recent(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// DELETE /admin/camera-logs
func (h *CameraHandler) Reset(c echo.Context) error {
	if err := h.stores.Camera.DeleteAll(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
