package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/domain/activity"
)

type ActivityHandler struct{ logs activity.Repository }

func NewActivityHandler(logs activity.Repository) *ActivityHandler {
	return &ActivityHandler{logs: logs}
}

func (h *ActivityHandler) ListEntries(c echo.Context) error {
	entries, err := h.logs.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
