package order

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/awal99/data-transfer/repository/datamart"
	ordersvc "github.com/awal99/data-transfer/service/order"
)

type Controller struct {
	Svc ordersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/orders
// @Summary Purchase and send a data bundle
// @Success 201 {object} map[string]any
// @Failure 400,409,502
func (h *Controller) Submit(c echo.Context) error {
	var req SubmitOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "detail": err.Error()})
	}

	resp, err := h.Svc.Submit(c.Request().Context(), ordersvc.SubmitReq{
		Phone:      req.Phone,
		SizeMB:     req.SizeMB,
		Network:    req.Network,
		WebhookURL: req.WebhookURL,
	})
	if err != nil {
		return h.submitError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"order_id":             resp.OrderID,
		"order_status":         resp.OrderStatus,
		"wallet_balance_after": resp.WalletBalanceAfter,
		"message":              resp.Message,
	})
}

func (h *Controller) submitError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ordersvc.ErrSubmissionInFlight):
		return c.JSON(http.StatusConflict, echo.Map{"message": err.Error()})
	case errors.Is(err, ordersvc.ErrMissingCredential),
		errors.Is(err, ordersvc.ErrMissingPhone),
		errors.Is(err, ordersvc.ErrInvalidPhone),
		errors.Is(err, ordersvc.ErrInvalidWebhook),
		errors.Is(err, ordersvc.ErrInvalidNetwork),
		errors.Is(err, ordersvc.ErrInvalidSize):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	var apiErr *datamart.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Category == datamart.CategoryConnectivity {
			return c.JSON(http.StatusBadGateway, echo.Map{"message": apiErr.Reason})
		}
		// Business rejections pass the upstream status through so the
		// caller sees the same category the ordering API reported. A 2xx
		// carrying an error body has no usable status to forward.
		status := apiErr.HTTPStatus
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return c.JSON(status, echo.Map{"message": apiErr.Reason})
	}

	h.Log.Error("Submit failed", "err", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
}
