// Package auth verifies credentials and normalizes staff phone numbers.
package auth

import (
	"errors"

	"github.com/ttacon/libphonenumber"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPhone = errors.New("phone number is not valid")

func HashPassword(s string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(s), bcrypt.DefaultCost)
}

// VerifyPassword compares a stored bcrypt hash with a submitted password. A
// nil hash never matches.
func VerifyPassword(hashed *string, password string) bool {
	if hashed == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*hashed), []byte(password)) == nil
}

// NormalizePhone parses a submitted phone number against the configured
// region and returns its E.164 form, so lookups are exact-match regardless of
// how the caller typed it.
func NormalizePhone(phone, region string) (string, error) {
	p, err := libphonenumber.Parse(phone, region)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", ErrInvalidPhone
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}
