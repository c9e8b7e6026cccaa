package errors

import (
	"math"
	"slices"
	"strings"
	"time"
	"unicode"
)

// MaxMarkerCount bounds configured marker counts. Larger rings are visual
// noise and only slow rendering down.
const MaxMarkerCount = 512

// ValidateFormats checks that every requested format is one of valid.
func ValidateFormats(formats []string, valid ...string) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "no output format given")
	}
	for _, f := range formats {
		if !slices.Contains(valid, f) {
			return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(valid, ", "))
		}
	}
	return nil
}

// ValidateDimension checks that a size value is finite and non-negative.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidDimension, "%s cannot be negative (got %g)", name, v)
	}
	return nil
}

// ValidateMarkerCount checks a configured marker count. Zero is valid and
// disables markers.
func ValidateMarkerCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "marker count cannot be negative (got %d)", n)
	}
	if n > MaxMarkerCount {
		return New(ErrCodeInvalidInput, "marker count too large (max %d)", MaxMarkerCount)
	}
	return nil
}

// ValidateDuration checks that a configured duration is not negative.
func ValidateDuration(name string, d time.Duration) error {
	if d < 0 {
		return New(ErrCodeInvalidConfig, "%s cannot be negative (got %s)", name, d)
	}
	return nil
}

// ValidatePath validates an output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
