package csrf

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// SecretGenerator draws secrets from an entropy source.
// The zero value reads from crypto/rand.
type SecretGenerator struct {
	Random io.Reader
}

// Generate returns length random bytes.
func (g SecretGenerator) Generate(length int) ([]byte, error) {
	return readRandom(g.Random, length)
}

// GenerateSecret returns a new secret of the given length read from crypto/rand.
func GenerateSecret(length int) ([]byte, error) {
	return readRandom(nil, length)
}

func readRandom(r io.Reader, length int) ([]byte, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: got %d, need > 0", ErrInvalidLength, length)
	}
	if r == nil {
		r = rand.Reader
	}

	b := make([]byte, length)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, errors.Join(ErrEntropy, err)
	}
	return b, nil
}
