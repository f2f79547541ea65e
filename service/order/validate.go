package order

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrMissingCredential = errors.New("no API credential is set, add one in settings")
	ErrMissingPhone      = errors.New("phone number is required")
	ErrInvalidPhone      = errors.New("phone number must be exactly 10 digits")
	ErrInvalidWebhook    = errors.New("webhook url must start with https://")
)

// ValidateForm checks the submission fields in order, stopping at the
// first failure, and returns the phone with all whitespace stripped.
// Pure; no side effects.
func ValidateForm(credential, phone, webhookURL string) (string, error) {
	if strings.TrimSpace(credential) == "" {
		return "", ErrMissingCredential
	}
	if strings.TrimSpace(phone) == "" {
		return "", ErrMissingPhone
	}
	normalized := stripSpaces(phone)
	if !isTenDigits(normalized) {
		return "", ErrInvalidPhone
	}
	if webhookURL != "" && !strings.HasPrefix(webhookURL, "https://") {
		return "", ErrInvalidWebhook
	}
	return normalized, nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
