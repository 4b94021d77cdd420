package errors

import (
	"strings"
	"unicode"
)

// ValidateBucketName validates a bucket name taken from user configuration.
// Bucket names become directory names under the Scoop buckets folder, so
// path separators, traversal sequences, and control characters are rejected.
func ValidateBucketName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "bucket name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "bucket name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "bucket name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "bucket name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
