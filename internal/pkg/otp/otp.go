package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator defines the contract for producing one-time password codes.
type Generator interface {
	// Generate returns a new random code.
	Generate() (string, error)
}

// NumericGenerator produces uniformly random numeric codes of a fixed width.
type NumericGenerator struct {
	digits int
	max    *big.Int
}

// NewNumeric constructs a NumericGenerator producing codes of the given
// width. Widths outside 4..10 fall back to the common 6 digits.
func NewNumeric(digits int) *NumericGenerator {
	if digits < 4 || digits > 10 {
		digits = 6
	}

	max := big.NewInt(10)
	max.Exp(max, big.NewInt(int64(digits)), nil)

	return &NumericGenerator{digits: digits, max: max}
}

// Generate returns a zero-padded random code. Every code in the space is
// equally likely, including those with leading zeros.
func (g *NumericGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.max)
	if err != nil {
		return "", fmt.Errorf("otp: read random: %w", err)
	}

	return fmt.Sprintf("%0*d", g.digits, n), nil
}
