package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateSnapRadius validates the clustering merge distance. A zero or
// negative radius would make endpoint merging a no-op or ill-defined, so
// it is rejected here at the configuration boundary rather than inside
// the vectorization core.
func ValidateSnapRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return New(ErrCodeInvalidSnapRadius, "snap radius must be a finite number")
	}
	if radius <= 0 {
		return New(ErrCodeInvalidSnapRadius, "snap radius must be positive, got %g", radius)
	}
	return nil
}

// ValidateSketchParams validates the optional vectorization defaults
// embedded in a sketch file. Zero means "not set" and is accepted;
// anything else must be a positive finite number.
func ValidateSketchParams(snapRadius, epsilon float64) error {
	if snapRadius != 0 {
		if err := ValidateSnapRadius(snapRadius); err != nil {
			return err
		}
	}
	if epsilon != 0 {
		if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon < 0 {
			return New(ErrCodeInvalidInput, "epsilon must be a positive finite number, got %g", epsilon)
		}
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path for
// safety and sanity.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
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

// ValidateGraphID validates a stored graph identifier. Identifiers are
// UUID-shaped strings; the check is conservative rather than a strict
// UUID parse so that store backends remain free to choose other schemes.
func ValidateGraphID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "graph id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "graph id too long (max 64 characters)")
	}
	for _, r := range id {
		ok := r == '-' ||
			(r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'f') ||
			(r >= 'A' && r <= 'F')
		if !ok {
			return New(ErrCodeInvalidInput, "graph id contains invalid characters: %q", id)
		}
	}
	if strings.Contains(id, "--") {
		return New(ErrCodeInvalidInput, "graph id contains invalid characters: %q", id)
	}
	return nil
}
