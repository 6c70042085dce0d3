package csrf

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"
)

// DigestLength is the width of the keyed hash carried in every token.
const DigestLength = sha256.Size

// Engine creates and verifies tokens bound to a secret.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	random     io.Reader
	saltLength int
}

// NewEngine returns an Engine producing salts of saltLength bytes.
// A nil random source means crypto/rand.
func NewEngine(saltLength int, random io.Reader) (*Engine, error) {
	if saltLength <= 0 {
		return nil, fmt.Errorf("%w: salt length %d", ErrInvalidLength, saltLength)
	}
	return &Engine{random: random, saltLength: saltLength}, nil
}

// SaltLength reports the configured salt size in bytes.
func (e *Engine) SaltLength() int { return e.saltLength }

// TokenLength reports the size of every token this engine creates.
func (e *Engine) TokenLength() int { return e.saltLength + DigestLength }

// CreateToken returns salt ‖ HMAC-SHA256(secret, salt) with a fresh salt.
// An empty secret is rejected with ErrInvalidLength, since no token could
// ever verify against it.
func (e *Engine) CreateToken(secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidLength)
	}
	salt, err := readRandom(e.random, e.saltLength)
	if err != nil {
		return nil, err
	}

	token := make([]byte, 0, e.TokenLength())
	token = append(token, salt...)
	return append(token, keyedHash(secret, salt)...), nil
}

// VerifyToken reports whether token was created from secret.
// Every malformed input resolves to false.
func (e *Engine) VerifyToken(token, secret []byte) bool {
	if len(secret) == 0 || len(token) != e.TokenLength() {
		return false
	}

	salt, digest := token[:e.saltLength], token[e.saltLength:]
	return constantTimeEqual(digest, keyedHash(secret, salt))
}

// VerifyTokenString decodes tokenText and verifies it against secret.
func (e *Engine) VerifyTokenString(tokenText string, secret []byte) bool {
	token, err := Decode(tokenText)
	if err != nil {
		return false
	}
	return e.VerifyToken(token, secret)
}

// CreateToken is the package-level form of Engine.CreateToken using crypto/rand.
func CreateToken(secret []byte, saltLength int) ([]byte, error) {
	e, err := NewEngine(saltLength, nil)
	if err != nil {
		return nil, err
	}
	return e.CreateToken(secret)
}

// VerifyToken is the package-level form of Engine.VerifyToken.
func VerifyToken(token, secret []byte, saltLength int) bool {
	if saltLength <= 0 {
		return false
	}
	e := Engine{saltLength: saltLength}
	return e.VerifyToken(token, secret)
}

func keyedHash(secret, salt []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(salt)
	return mac.Sum(nil)
}

// constantTimeEqual touches every byte regardless of where the first
// difference sits. Lengths are not secret.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}
