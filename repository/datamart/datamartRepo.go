// Package datamart talks to the remote bundle-ordering API. One JSON POST
// per submission, no retries; failures are classified as connectivity
// (transport or undecodable body) or business (well-formed upstream error).
package datamart

import (
	"context"
	"net/http"

	"github.com/awal99/data-transfer/model"
)

type Category string

const (
	// CategoryConnectivity covers transport failures and malformed
	// responses; nothing beyond "check your connection" is surfaced.
	CategoryConnectivity Category = "connectivity"
	// CategoryBusiness covers well-formed upstream rejections mapped
	// through the fixed status-code table.
	CategoryBusiness Category = "business"
)

// APIError is a failed submission. Reason is the user-facing string; for
// business errors HTTPStatus carries the upstream code that produced it.
type APIError struct {
	Category   Category
	HTTPStatus int
	Reason     string
}

func (e *APIError) Error() string { return e.Reason }

const connectivityReason = "could not reach the ordering service, check your connection"

// Fixed upstream status mapping. Codes outside this table fall back to the
// response body's message, then to a generic string.
var statusReasons = map[int]string{
	http.StatusBadRequest:          "the order was rejected as invalid, check the details and try again",
	http.StatusUnauthorized:        "no API credential was provided",
	http.StatusPaymentRequired:     "insufficient wallet balance for this order",
	http.StatusForbidden:           "the API credential was not accepted",
	http.StatusConflict:            "an order with this reference was already submitted",
	http.StatusUnprocessableEntity: "this size is not available on the selected network",
	http.StatusTooManyRequests:     "too many requests, slow down and try again shortly",
	http.StatusInternalServerError: "the ordering service hit an internal error",
}

const unknownReason = "the order failed for an unknown reason"

type Repo interface {
	// SubmitOrder issues exactly one POST. A nil error means the upstream
	// confirmed success; every failure is an *APIError.
	SubmitOrder(ctx context.Context, req model.OrderRequest) (*model.OrderResponse, error)
}
