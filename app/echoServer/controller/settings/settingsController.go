package settings

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/awal99/data-transfer/config"
	"github.com/awal99/data-transfer/service/credential"
)

type Controller struct {
	Svc credential.Service
	V   *validator.Validate
	Log *slog.Logger
	Cfg config.App
}

type SaveCredentialReq struct {
	Credential string `json:"credential" validate:"required"`
}

// GET /v1/settings/credential
// The token itself never leaves the store; clients only see presence and
// a masked tail for recognition.
func (h *Controller) GetCredential(c echo.Context) error {
	v, err := h.Svc.Load(c.Request().Context())
	if err != nil {
		h.Log.Error("credential load failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"configured": v != "",
		"hint":       maskTail(v),
	})
}

// PUT /v1/settings/credential
func (h *Controller) SaveCredential(c echo.Context) error {
	var req SaveCredentialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}
	if err := h.Svc.Save(c.Request().Context(), req.Credential); err != nil {
		if errors.Is(err, credential.ErrEmptyCredential) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		h.Log.Error("credential save failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "credential saved"})
}

// DELETE /v1/settings/credential
func (h *Controller) ClearCredential(c echo.Context) error {
	if err := h.Svc.Clear(c.Request().Context()); err != nil {
		h.Log.Error("credential clear failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "credential cleared"})
}

// DELETE /v1/settings/data
// Best-effort combined wipe of credential and history.
func (h *Controller) ClearAll(c echo.Context) error {
	if err := h.Svc.ClearAll(c.Request().Context()); err != nil {
		h.Log.Error("clear all failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "all data cleared"})
}

// GET /v1/limits
// Documented upstream limits, informational only; nothing is enforced
// locally before a submission.
func (h *Controller) Limits(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"requests_per_window": h.Cfg.RateLimitRequests,
		"window_seconds":      int(h.Cfg.RateLimitWindow.Seconds()),
		"daily_quota":         h.Cfg.DailyQuota,
	})
}

func maskTail(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", 4) + v[len(v)-4:]
}
