// model/order.go
package model

import "time"

type Network string

const (
	NetworkMTN        Network = "mtn"
	NetworkAirtelTigo Network = "airteltigo"
)

type OrderStatus string

const (
	OrderInitiated OrderStatus = "initiated"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
	OrderUnknown   OrderStatus = "unknown"
)

// OrderRequest is the body posted to the upstream ordering API. It is
// built per submission and never persisted. WebhookURL is omitted from
// the wire entirely when unset, not sent as an empty string.
type OrderRequest struct {
	Credential string  `json:"credential"`
	Phone      string  `json:"phone"`
	SizeMB     int     `json:"size"`
	Network    Network `json:"network"`
	Reference  string  `json:"reference"`
	WebhookURL string  `json:"webhook_url,omitempty"`
}

// OrderResponse mirrors the upstream response body. Everything past
// status/message is optional; error responses usually carry only those two.
type OrderResponse struct {
	Status              string      `json:"status"`
	Message             string      `json:"message"`
	OrderID             string      `json:"order_id,omitempty"`
	WalletBalanceBefore *float64    `json:"wallet_balance_before,omitempty"`
	WalletBalanceAfter  *float64    `json:"wallet_balance_after,omitempty"`
	OrderStatus         OrderStatus `json:"order_status,omitempty"`
	Phone               string      `json:"phone,omitempty"`
	SizeMB              int         `json:"size,omitempty"`
	Network             Network     `json:"network,omitempty"`
}

// TransactionEntry is one line of the locally persisted history: the
// upstream response plus the client-side time the order completed.
type TransactionEntry struct {
	OrderResponse
	Timestamp time.Time `json:"timestamp"`
}
