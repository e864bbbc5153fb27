package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MatrixElements is the number of values a 3x3 matrix input must contain.
const MatrixElements = 9

// ParseMatrixInput parses free-form comma-separated text into matrix values.
// Returns ErrInvalidInput when an element cannot be parsed as a real number
// or the input does not contain exactly nine numbers.
func ParseMatrixInput(text string) ([]float64, error) {
	parts := strings.Split(text, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, token)
		}
		values = append(values, v)
	}

	if err := ValidateMatrixValues(values); err != nil {
		return nil, err
	}
	return values, nil
}

// ValidateMatrixValues checks that values form a valid matrix input:
// exactly nine elements, all finite.
func ValidateMatrixValues(values []float64) error {
	if len(values) != MatrixElements {
		return fmt.Errorf("%w: list must contain nine numbers, got %d", ErrInvalidInput, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: element %d is not finite", ErrInvalidInput, i)
		}
	}
	return nil
}
