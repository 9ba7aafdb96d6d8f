package utils

import "strings"

// FormatPhoneNumber normalizes a phone number for the gateway by dropping
// a leading "+". Numbers without a prefix pass through unchanged, so the
// function is idempotent.
func FormatPhoneNumber(phone string) string {
	return strings.TrimPrefix(phone, "+")
}
