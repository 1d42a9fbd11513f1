package errors

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// Page size limits in points. PDF viewers are only required to handle
// user space up to 14400 units on a side.
const (
	MinPageSide = 72.0
	MaxPageSide = 14400.0
)

// Algorithms lists the traversal names accepted by [ValidateAlgorithm].
var Algorithms = []string{"none", "bfs", "dfs", "dijkstra"}

// ValidatePath validates an output or input file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
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

// ValidatePageSize checks that width and height are finite and within
// [MinPageSide, MaxPageSide].
func ValidatePageSize(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "page size must be finite")
		}
		if v < MinPageSide || v > MaxPageSide {
			return New(ErrCodeInvalidInput, "page side %.1f out of range [%.0f, %.0f]", v, MinPageSide, MaxPageSide)
		}
	}
	return nil
}

// ValidateAlgorithm checks that name is one of [Algorithms], ignoring case.
func ValidateAlgorithm(name string) error {
	if !slices.Contains(Algorithms, strings.ToLower(name)) {
		return New(ErrCodeInvalidInput, "unknown algorithm %q (must be one of %s)", name, strings.Join(Algorithms, ", "))
	}
	return nil
}

// ValidateNodeIndex checks a zero-based node index against a node count.
func ValidateNodeIndex(i, n int) error {
	if i < 0 || i >= n {
		return New(ErrCodeIndexRange, "node index %d out of range (graph has %d nodes)", i+1, n)
	}
	return nil
}
