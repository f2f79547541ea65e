package datamart

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/awal99/data-transfer/model"
)

type httpRepo struct {
	orderURL string
	client   *http.Client
}

func NewHTTP(orderURL string, client *http.Client) Repo {
	if client == nil {
		client = &http.Client{}
	}
	return &httpRepo{orderURL: orderURL, client: client}
}

func (r *httpRepo) SubmitOrder(ctx context.Context, req model.OrderRequest) (*model.OrderResponse, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, &APIError{Category: CategoryConnectivity, Reason: connectivityReason}
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.orderURL, bytes.NewReader(b))
	if err != nil {
		return nil, &APIError{Category: CategoryConnectivity, Reason: connectivityReason}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, &APIError{Category: CategoryConnectivity, Reason: connectivityReason}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Category: CategoryConnectivity, Reason: connectivityReason}
	}

	// Decode is best-effort on error statuses: the table below speaks
	// first and the body only fills the gaps.
	var out model.OrderResponse
	decodeErr := json.Unmarshal(raw, &out)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if ok && decodeErr != nil {
		// success status with an unreadable body counts as connectivity
		return nil, &APIError{Category: CategoryConnectivity, Reason: connectivityReason}
	}
	if ok && out.Status == "success" {
		return &out, nil
	}

	reason, known := statusReasons[resp.StatusCode]
	if !known {
		// outside the table the body is the only source of a reason;
		// a body we cannot decode is a malformed response
		if decodeErr != nil {
			return nil, &APIError{Category: CategoryConnectivity, Reason: connectivityReason}
		}
		reason = out.Message
	}
	if reason == "" {
		reason = unknownReason
	}
	return nil, &APIError{Category: CategoryBusiness, HTTPStatus: resp.StatusCode, Reason: reason}
}
