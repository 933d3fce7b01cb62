// Package validation gates inquiry submissions before they reach the store.
package validation

import (
	"regexp"
	"unicode/utf8"
)

// MinMessageLength is the shortest message accepted, in characters.
const MinMessageLength = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Kind identifies which rule rejected a payload.
type Kind string

const (
	MissingField    Kind = "missing_field"
	InvalidEmail    Kind = "invalid_email"
	MessageTooShort Kind = "message_too_short"
)

var messages = map[Kind]string{
	MissingField:    "Email and message are required",
	InvalidEmail:    "Invalid email format",
	MessageTooShort: "Message must be at least 10 characters",
}

// Error is the first rule an inquiry payload failed.
type Error struct {
	Kind Kind
}

func (e *Error) Error() string {
	return messages[e.Kind]
}

// Is lets errors.Is match on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrMissingField    = &Error{Kind: MissingField}
	ErrInvalidEmail    = &Error{Kind: InvalidEmail}
	ErrMessageTooShort = &Error{Kind: MessageTooShort}
)

// ValidateInquiry checks presence, then email shape, then message length,
// and returns only the first violation.
func ValidateInquiry(email, message string) error {
	if email == "" || message == "" {
		return &Error{Kind: MissingField}
	}
	if !emailPattern.MatchString(email) {
		return &Error{Kind: InvalidEmail}
	}
	if utf8.RuneCountInString(message) < MinMessageLength {
		return &Error{Kind: MessageTooShort}
	}
	return nil
}
