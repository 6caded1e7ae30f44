package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Password validation regex patterns
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)
)

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// ValidateDisplayName checks the profile display name length
func ValidateDisplayName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return false, "Name must be at least 2 characters long"
	}
	if len(name) > 100 {
		return false, "Name must not exceed 100 characters"
	}
	return true, ""
}

// ValidateAvatarURL checks that the avatar URL is a well-formed http(s) URL
func ValidateAvatarURL(avatarURL string) (bool, string) {
	parsed, err := url.ParseRequestURI(strings.TrimSpace(avatarURL))
	if err != nil {
		return false, "Avatar URL must be a valid URL"
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false, "Avatar URL must use http or https"
	}
	if parsed.Host == "" {
		return false, "Avatar URL must include a host"
	}
	return true, ""
}
