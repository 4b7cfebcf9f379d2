package taskhub

import (
	"regexp"
	"strings"
)

// Lowercase local part and domain, TLD of 2 to 4 letters. Addresses are
// compared exactly as stored; no normalization happens anywhere.
var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)

// IsNotEmpty reports whether s contains anything besides whitespace.
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsEmailValid reports whether s matches the accepted email shape.
func IsEmailValid(s string) bool {
	return emailPattern.MatchString(s)
}

// CheckPasswordPolicy validates a new password against the length policy
// and its confirmation. It returns nil when the password is acceptable.
func CheckPasswordPolicy(password, confirm string) error {
	if len(password) < 6 || len(password) > 12 {
		return ErrPasswordLength
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
