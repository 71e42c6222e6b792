package utils

import (
	"regexp"
	"strings"
)

var (
	// emailRegex is a UI sanity check, not RFC 5322.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// nigerianPhoneRegex matches +234/234/0 followed by a 7, 8 or 9 and nine digits.
	nigerianPhoneRegex = regexp.MustCompile(`^(\+?234|0)[789]\d{9}$`)
)

// IsValidEmail performs basic email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidNigerianPhone reports whether phone, ignoring whitespace, is a
// Nigerian mobile number.
func IsValidNigerianPhone(phone string) bool {
	return nigerianPhoneRegex.MatchString(strings.Join(strings.Fields(phone), ""))
}
