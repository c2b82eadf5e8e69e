package logging

import (
	"regexp"
)

const (
	// MaxFieldLogLength is the maximum length of a free-text field to log
	MaxFieldLogLength = 100
	// RedactedText is the replacement text for sensitive data
	RedactedText = "[REDACTED]"
)

var (
	// Pattern to match email addresses
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Pattern to match phone numbers (7+ digits with optional separators)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{6,}\d`)

	// Pattern to match potential API keys
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|key)=[A-Za-z0-9-_]{20,}`)
)

// SanitizeEmail masks the local part of an email for logging, keeping just
// enough to correlate log lines (first character + domain).
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}
	at := -1
	for i, c := range email {
		if c == '@' {
			at = i
			break
		}
	}
	if at <= 0 {
		return RedactedText
	}
	return email[:1] + "***" + email[at:]
}

// SanitizeError sanitizes error messages that might contain contact details
// or credentials. Use this before logging any error that carries user input.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	sanitized := emailPattern.ReplaceAllString(err.Error(), RedactedText)
	sanitized = phonePattern.ReplaceAllString(sanitized, RedactedText)
	sanitized = apiKeyPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)

	return sanitized
}

// SanitizeFreeText truncates and sanitizes user-authored text (bios, review
// feedback) for logging.
func SanitizeFreeText(text string) string {
	if text == "" {
		return ""
	}

	sanitized := emailPattern.ReplaceAllString(text, RedactedText)
	sanitized = phonePattern.ReplaceAllString(sanitized, RedactedText)

	return TruncateString(sanitized, MaxFieldLogLength)
}

// TruncateString truncates a string to maxLen and adds ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
