package credential

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awal99/data-transfer/model"
	"github.com/awal99/data-transfer/repository/kvstore"
	"github.com/awal99/data-transfer/service/txlog"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_Unset(t *testing.T) {
	svc := New(kvstore.NewMemory(), discardLog())

	v, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSave_RejectsBlank(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	svc := New(kv, discardLog())

	require.ErrorIs(t, svc.Save(ctx, ""), ErrEmptyCredential)
	require.ErrorIs(t, svc.Save(ctx, "   \t"), ErrEmptyCredential)

	v, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSave_TrimsAndOverwrites(t *testing.T) {
	ctx := context.Background()
	svc := New(kvstore.NewMemory(), discardLog())

	require.NoError(t, svc.Save(ctx, "  first-token  "))
	v, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "first-token", v)

	require.NoError(t, svc.Save(ctx, "second-token"))
	v, err = svc.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "second-token", v)
}

func TestClear_LeavesHistoryUntouched(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	svc := New(kv, discardLog())
	hist := txlog.New(kv, discardLog())

	require.NoError(t, svc.Save(ctx, "tok"))
	require.NoError(t, hist.Append(ctx, model.OrderResponse{OrderID: "ord_1"}))

	require.NoError(t, svc.Clear(ctx))

	v, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, v)

	entries, err := hist.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestClearAll_RemovesCredentialAndHistory(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	svc := New(kv, discardLog())
	hist := txlog.New(kv, discardLog())

	require.NoError(t, svc.Save(ctx, "tok"))
	require.NoError(t, hist.Append(ctx, model.OrderResponse{OrderID: "ord_1"}))

	require.NoError(t, svc.ClearAll(ctx))

	v, err := svc.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, v)

	entries, err := hist.ReadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}
