package history

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/awal99/data-transfer/model"
	"github.com/awal99/data-transfer/service/txlog"
)

type Controller struct {
	Svc txlog.Service
	Log *slog.Logger
}

// GET /v1/transactions
func (h *Controller) List(c echo.Context) error {
	entries, err := h.Svc.ReadAll(c.Request().Context())
	if err != nil {
		// History still renders; the store hiccup is diagnostics only.
		h.Log.Warn("history read degraded", "err", err)
	}
	if entries == nil {
		entries = []model.TransactionEntry{}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": entries})
}

// DELETE /v1/transactions
func (h *Controller) Clear(c echo.Context) error {
	if err := h.Svc.Clear(c.Request().Context()); err != nil {
		h.Log.Error("history clear failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not clear history"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "history cleared"})
}
