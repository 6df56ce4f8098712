package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericGeneratorWidth(t *testing.T) {

	// Arrange
	gen := NewNumeric(6)

	// Act & Assert: every draw is exactly six digits, leading zeros kept.
	for i := 0; i < 200; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestNumericGeneratorWidthFallback(t *testing.T) {
	tests := []struct {
		name   string
		digits int
		want   int
	}{
		{name: "TooNarrow", digits: 2, want: 6},
		{name: "TooWide", digits: 12, want: 6},
		{name: "InRange", digits: 8, want: 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			gen := NewNumeric(tc.digits)

			// Act
			code, err := gen.Generate()

			// Assert
			require.NoError(t, err)
			assert.Len(t, code, tc.want)
		})
	}
}
