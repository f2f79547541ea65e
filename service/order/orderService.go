// service/order/orderService.go
package order

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/awal99/data-transfer/model"
	"github.com/awal99/data-transfer/repository/datamart"
	"github.com/awal99/data-transfer/service/credential"
	"github.com/awal99/data-transfer/service/txlog"
)

var (
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrInvalidNetwork     = errors.New("unknown network")
	ErrInvalidSize        = errors.New("size must be a positive number")
)

type SubmitReq struct {
	Phone      string
	SizeMB     int
	Network    string
	WebhookURL string
}

type Service interface {
	// Submit validates the form, builds the order request with a fresh
	// reference and issues a single upstream call. On success the
	// response is appended to the transaction history; a failed append
	// never fails the order.
	Submit(ctx context.Context, req SubmitReq) (*model.OrderResponse, error)
}

type service struct {
	creds credential.Service
	dm    datamart.Repo
	hist  txlog.Service
	log   *slog.Logger

	// At most one submission in flight; a second concurrent call is
	// rejected rather than allowed to race the history append.
	inFlight atomic.Bool
}

func New(creds credential.Service, dm datamart.Repo, hist txlog.Service, log *slog.Logger) Service {
	return &service{creds: creds, dm: dm, hist: hist, log: log}
}

func (s *service) Submit(ctx context.Context, req SubmitReq) (*model.OrderResponse, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	network, err := parseNetwork(req.Network)
	if err != nil {
		return nil, err
	}
	if req.SizeMB <= 0 {
		return nil, ErrInvalidSize
	}

	cred, err := s.creds.Load(ctx)
	if err != nil {
		// a store failure reads as an absent credential
		return nil, ErrMissingCredential
	}

	phone, err := ValidateForm(cred, req.Phone, req.WebhookURL)
	if err != nil {
		return nil, err
	}

	resp, err := s.dm.SubmitOrder(ctx, model.OrderRequest{
		Credential: cred,
		Phone:      phone,
		SizeMB:     req.SizeMB,
		Network:    network,
		Reference:  newReference(),
		WebhookURL: req.WebhookURL,
	})
	if err != nil {
		return nil, err
	}

	if aerr := s.hist.Append(ctx, *resp); aerr != nil {
		s.log.Warn("order succeeded but history append failed", "order_id", resp.OrderID, "err", aerr)
	}
	return resp, nil
}

func parseNetwork(raw string) (model.Network, error) {
	switch model.Network(strings.ToLower(strings.TrimSpace(raw))) {
	case model.NetworkMTN:
		return model.NetworkMTN, nil
	case model.NetworkAirtelTigo:
		return model.NetworkAirtelTigo, nil
	default:
		return "", ErrInvalidNetwork
	}
}
