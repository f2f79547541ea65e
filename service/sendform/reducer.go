// Package sendform models the send screen as a pure reducer so its
// transitions can be tested without any rendering layer. The submit
// button is the only submission path and stays disabled while a
// submission is pending.
package sendform

import "github.com/awal99/data-transfer/model"

type State struct {
	Phone      string
	WebhookURL string
	Network    model.Network
	SizeMB     int
	Submitting bool
	ErrorMsg   string
	LastOrder  string
}

func Initial() State {
	return State{Network: model.NetworkMTN}
}

type Event interface{ isEvent() }

type PhoneChanged struct{ Value string }
type WebhookChanged struct{ Value string }
type NetworkSelected struct{ Value model.Network }
type SizeSelected struct{ ValueMB int }
type SubmitStarted struct{}
type SubmitSucceeded struct{ OrderID string }
type SubmitFailed struct{ Reason string }

func (PhoneChanged) isEvent()    {}
func (WebhookChanged) isEvent()  {}
func (NetworkSelected) isEvent() {}
func (SizeSelected) isEvent()    {}
func (SubmitStarted) isEvent()   {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}

// Reduce returns the state after applying one event. Field edits are
// ignored while a submission is pending; a successful submission resets
// the phone and webhook fields for the next order.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case PhoneChanged:
		if s.Submitting {
			return s
		}
		s.Phone = ev.Value
	case WebhookChanged:
		if s.Submitting {
			return s
		}
		s.WebhookURL = ev.Value
	case NetworkSelected:
		if s.Submitting {
			return s
		}
		s.Network = ev.Value
	case SizeSelected:
		if s.Submitting {
			return s
		}
		s.SizeMB = ev.ValueMB
	case SubmitStarted:
		s.Submitting = true
		s.ErrorMsg = ""
	case SubmitSucceeded:
		s.Submitting = false
		s.Phone = ""
		s.WebhookURL = ""
		s.ErrorMsg = ""
		s.LastOrder = ev.OrderID
	case SubmitFailed:
		s.Submitting = false
		s.ErrorMsg = ev.Reason
	}
	return s
}
