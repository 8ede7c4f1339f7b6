package service

import (
	"fmt"
	"net/mail"
	"os"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const defaultEmailDomain = "embl.de"

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword compares a plaintext password against a bcrypt hash.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidatePassword enforces the account password policy: at least 8
// characters including one lowercase letter, one uppercase letter and one
// digit. The returned error names the violated constraint.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("Password must contain at least 8 characters")
	}
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return fmt.Errorf("Password must contain at least one lowercase letter, one uppercase letter and one digit")
	}
	return nil
}

// AllowedEmailDomain is the domain registrations are restricted to,
// configurable via ALLOWED_EMAIL_DOMAIN.
func AllowedEmailDomain() string {
	if domain := os.Getenv("ALLOWED_EMAIL_DOMAIN"); domain != "" {
		return domain
	}
	return defaultEmailDomain
}

// ValidateEmail checks the address is well formed and belongs to the
// permitted domain.
func ValidateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("Invalid email address")
	}
	domain := AllowedEmailDomain()
	local, dom, ok := strings.Cut(email, "@")
	if !ok || local == "" || !strings.EqualFold(dom, domain) {
		return fmt.Errorf("Email address must belong to the %s domain", domain)
	}
	return nil
}
