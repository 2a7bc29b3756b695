package errors

import (
	"strings"
	"unicode"
)

// maxPrefixLength bounds label prefixes so generated labels stay compact.
const maxPrefixLength = 32

// ValidatePrefix validates a label prefix used for enumerated identifiers.
//
// Labels end up in CSV cells and DOT identifiers, so the prefix may not contain:
//   - Control characters (including newlines and tabs)
//   - Quotes, commas or semicolons
//   - More than 32 characters
//
// The empty prefix is valid and yields purely numeric labels.
func ValidatePrefix(prefix string) error {
	if len(prefix) > maxPrefixLength {
		return New(ErrCodeInvalidInput, "prefix too long (max %d characters)", maxPrefixLength)
	}

	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "prefix contains invalid control characters")
		}
	}

	if i := strings.IndexAny(prefix, `",;'`); i >= 0 {
		return New(ErrCodeInvalidInput, "prefix contains invalid character: %q", prefix[i])
	}

	return nil
}

// ValidateOutputName validates an output filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateOutputName(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "output filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "output filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "output filename cannot be a hidden file")
	}

	for _, r := range filename {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output filename contains invalid characters")
		}
	}

	return nil
}
