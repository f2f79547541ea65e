// Package credential manages the single upstream API token. At most one
// value exists at a time; absence means orders cannot be submitted.
package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/awal99/data-transfer/repository/kvstore"
	"github.com/awal99/data-transfer/service/txlog"
)

const storageKey = "datatransfer:credential"

var (
	ErrEmptyCredential = errors.New("credential must not be empty")
	ErrStoreFailed     = errors.New("credential store operation failed")
)

type Service interface {
	// Load returns the stored credential, or "" when none is set.
	Load(ctx context.Context) (string, error)
	// Save overwrites the stored credential. Blank values are rejected.
	Save(ctx context.Context, value string) error
	Clear(ctx context.Context) error
	// ClearAll removes the credential and the transaction history in one
	// best-effort multi-key removal. Partial failure is possible and is
	// not rolled back.
	ClearAll(ctx context.Context) error
}

type service struct {
	kv  kvstore.Store
	log *slog.Logger
}

func New(kv kvstore.Store, log *slog.Logger) Service {
	return &service{kv: kv, log: log}
}

func (s *service) Load(ctx context.Context) (string, error) {
	v, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		s.log.Error("credential read failed", "err", err)
		return "", fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	if !ok {
		return "", nil
	}
	return v, nil
}

func (s *service) Save(ctx context.Context, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ErrEmptyCredential
	}
	if err := s.kv.Set(ctx, storageKey, trimmed); err != nil {
		s.log.Error("credential write failed", "err", err)
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	return nil
}

func (s *service) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, storageKey); err != nil {
		s.log.Error("credential clear failed", "err", err)
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	return nil
}

func (s *service) ClearAll(ctx context.Context) error {
	if err := s.kv.MultiRemove(ctx, storageKey, txlog.StorageKey()); err != nil {
		s.log.Error("clear all failed", "err", err)
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	return nil
}
