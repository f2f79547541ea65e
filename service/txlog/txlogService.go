// Package txlog keeps the capped, newest-first order history in the
// key-value store. Persistence failures are logged and reported as error
// kinds; they never abort the operation that triggered the write.
package txlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/awal99/data-transfer/model"
	"github.com/awal99/data-transfer/repository/kvstore"
)

const (
	// MaxEntries is the history cap; older entries fall off silently.
	MaxEntries = 50

	storageKey = "datatransfer:transactions"
)

var (
	ErrLoadFailed  = errors.New("transaction log read failed")
	ErrStoreFailed = errors.New("transaction log write failed")
)

type Service interface {
	// Append prepends entry with the current time, truncates to
	// MaxEntries and writes back. A malformed or missing stored log is
	// treated as empty; a store read failure makes the whole append a
	// no-op so existing history is never overwritten. The returned
	// error is diagnostic only and never aborts the caller.
	Append(ctx context.Context, resp model.OrderResponse) error
	// ReadAll returns the stored history newest first, empty when
	// nothing has been written. The slice is always usable; a non-nil
	// error only flags that the store could not be read.
	ReadAll(ctx context.Context) ([]model.TransactionEntry, error)
	Clear(ctx context.Context) error
}

type service struct {
	kv  kvstore.Store
	log *slog.Logger
	now func() time.Time

	// Append is read-modify-write over one key; overlapping appends
	// from concurrent requests must not interleave.
	mu sync.Mutex
}

func New(kv kvstore.Store, log *slog.Logger) Service {
	return &service{kv: kv, log: log, now: time.Now}
}

func (s *service) Append(ctx context.Context, resp model.OrderResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A failed read must not be mistaken for an empty history: writing
	// back would clobber everything previously stored. No-op instead.
	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	entry := model.TransactionEntry{OrderResponse: resp, Timestamp: s.now().UTC()}
	entries = append([]model.TransactionEntry{entry}, entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	b, err := json.Marshal(entries)
	if err != nil {
		s.log.Error("txlog marshal failed", "err", err)
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	if err := s.kv.Set(ctx, storageKey, string(b)); err != nil {
		s.log.Error("txlog write failed", "err", err)
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	return nil
}

func (s *service) ReadAll(ctx context.Context) ([]model.TransactionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Remove(ctx, storageKey); err != nil {
		s.log.Error("txlog clear failed", "err", err)
		return fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	return nil
}

// load always yields a usable (possibly empty) history: an absent key and
// corrupt JSON are empty, a store read failure is empty plus an
// ErrLoadFailed for callers that care.
func (s *service) load(ctx context.Context) ([]model.TransactionEntry, error) {
	raw, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		s.log.Error("txlog read failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	if !ok {
		return nil, nil
	}
	var entries []model.TransactionEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.log.Warn("txlog corrupt, treating as empty", "err", err)
		return nil, nil
	}
	return entries, nil
}

// StorageKey is exported for the combined clear-all removal in the
// credential service.
func StorageKey() string { return storageKey }
