package sendform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/awal99/data-transfer/model"
)

func TestReduce_FieldEdits(t *testing.T) {
	s := Initial()
	s = Reduce(s, PhoneChanged{Value: "054 348 2280"})
	s = Reduce(s, WebhookChanged{Value: "https://example.com/hook"})
	s = Reduce(s, NetworkSelected{Value: model.NetworkAirtelTigo})
	s = Reduce(s, SizeSelected{ValueMB: 1000})

	require.Equal(t, "054 348 2280", s.Phone)
	require.Equal(t, "https://example.com/hook", s.WebhookURL)
	require.Equal(t, model.NetworkAirtelTigo, s.Network)
	require.Equal(t, 1000, s.SizeMB)
	require.False(t, s.Submitting)
}

func TestReduce_SuccessResetsPhoneAndWebhook(t *testing.T) {
	s := Initial()
	s = Reduce(s, PhoneChanged{Value: "0543482280"})
	s = Reduce(s, WebhookChanged{Value: "https://example.com/hook"})
	s = Reduce(s, SizeSelected{ValueMB: 500})
	s = Reduce(s, SubmitStarted{})
	require.True(t, s.Submitting)

	s = Reduce(s, SubmitSucceeded{OrderID: "ord_1"})

	require.False(t, s.Submitting)
	require.Empty(t, s.Phone)
	require.Empty(t, s.WebhookURL)
	require.Equal(t, "ord_1", s.LastOrder)
	// selection survives for the next order
	require.Equal(t, 500, s.SizeMB)
}

func TestReduce_FailureKeepsFields(t *testing.T) {
	s := Initial()
	s = Reduce(s, PhoneChanged{Value: "0543482280"})
	s = Reduce(s, SubmitStarted{})
	s = Reduce(s, SubmitFailed{Reason: "insufficient wallet balance for this order"})

	require.False(t, s.Submitting)
	require.Equal(t, "0543482280", s.Phone)
	require.Equal(t, "insufficient wallet balance for this order", s.ErrorMsg)
}

func TestReduce_EditsIgnoredWhileSubmitting(t *testing.T) {
	s := Initial()
	s = Reduce(s, PhoneChanged{Value: "0543482280"})
	s = Reduce(s, SubmitStarted{})

	s = Reduce(s, PhoneChanged{Value: "0000000000"})
	s = Reduce(s, WebhookChanged{Value: "https://other"})

	require.Equal(t, "0543482280", s.Phone)
	require.Empty(t, s.WebhookURL)
}

func TestReduce_SubmitClearsPriorError(t *testing.T) {
	s := Initial()
	s = Reduce(s, SubmitStarted{})
	s = Reduce(s, SubmitFailed{Reason: "boom"})
	require.NotEmpty(t, s.ErrorMsg)

	s = Reduce(s, SubmitStarted{})
	require.Empty(t, s.ErrorMsg)
}
