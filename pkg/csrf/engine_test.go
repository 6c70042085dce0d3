package csrf_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/csrfkit/pkg/csrf"
)

func mustSecret(t testing.TB, n int) []byte {
	t.Helper()
	secret, err := csrf.GenerateSecret(n)
	require.NoError(t, err)
	return secret
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	e, err := csrf.NewEngine(8, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, e.SaltLength())
	assert.Equal(t, 8+csrf.DigestLength, e.TokenLength())

	_, err = csrf.NewEngine(0, nil)
	assert.ErrorIs(t, err, csrf.ErrInvalidLength)
}

func TestEngine_CreateToken(t *testing.T) {
	t.Parallel()

	t.Run("layout is salt then keyed hash", func(t *testing.T) {
		t.Parallel()
		salt := []byte("saltsalt")
		secret := []byte("0123456789abcdefgh")
		e, err := csrf.NewEngine(len(salt), bytes.NewReader(salt))
		require.NoError(t, err)

		token, err := e.CreateToken(secret)
		require.NoError(t, err)

		mac := hmac.New(sha256.New, secret)
		mac.Write(salt)
		assert.Equal(t, append(append([]byte{}, salt...), mac.Sum(nil)...), token)
	})

	t.Run("default sizes", func(t *testing.T) {
		t.Parallel()
		secret := mustSecret(t, 18)
		token, err := csrf.CreateToken(secret, 8)
		require.NoError(t, err)
		assert.Len(t, token, 40)
		assert.Len(t, csrf.Encode(token), 54)
		assert.True(t, csrf.VerifyToken(token, secret, 8))
	})

	t.Run("tokens are salted", func(t *testing.T) {
		t.Parallel()
		secret := mustSecret(t, 18)
		a, err := csrf.CreateToken(secret, 8)
		require.NoError(t, err)
		b, err := csrf.CreateToken(secret, 8)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.True(t, csrf.VerifyToken(a, secret, 8))
		assert.True(t, csrf.VerifyToken(b, secret, 8))
	})

	t.Run("entropy failure", func(t *testing.T) {
		t.Parallel()
		e, err := csrf.NewEngine(8, iotest.ErrReader(errors.New("drained")))
		require.NoError(t, err)
		token, err := e.CreateToken(mustSecret(t, 18))
		assert.ErrorIs(t, err, csrf.ErrEntropy)
		assert.Nil(t, token)
	})

	t.Run("empty secret", func(t *testing.T) {
		t.Parallel()
		for _, secret := range [][]byte{nil, {}} {
			token, err := csrf.CreateToken(secret, 8)
			assert.ErrorIs(t, err, csrf.ErrInvalidLength)
			assert.Nil(t, token)
		}
	})

	t.Run("invalid salt length", func(t *testing.T) {
		t.Parallel()
		_, err := csrf.CreateToken(mustSecret(t, 18), 0)
		assert.ErrorIs(t, err, csrf.ErrInvalidLength)
	})
}

func TestEngine_VerifyToken(t *testing.T) {
	t.Parallel()

	secret := mustSecret(t, 18)
	e, err := csrf.NewEngine(8, nil)
	require.NoError(t, err)
	token, err := e.CreateToken(secret)
	require.NoError(t, err)

	flip := func(i int) []byte {
		out := bytes.Clone(token)
		out[i] ^= 0x01
		return out
	}

	tests := []struct {
		name   string
		token  []byte
		secret []byte
		want   bool
	}{
		{name: "valid", token: token, secret: secret, want: true},
		{name: "other secret", token: token, secret: mustSecret(t, 18)},
		{name: "empty secret", token: token, secret: []byte{}},
		{name: "nil secret", token: token},
		{name: "empty token", token: []byte{}, secret: secret},
		{name: "truncated", token: token[:len(token)-1], secret: secret},
		{name: "extended", token: append(bytes.Clone(token), 0), secret: secret},
		{name: "salt bit flipped", token: flip(0), secret: secret},
		{name: "first digest bit flipped", token: flip(8), secret: secret},
		{name: "last digest bit flipped", token: flip(len(token) - 1), secret: secret},
		{name: "salt only", token: token[:8], secret: secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, e.VerifyToken(tt.token, tt.secret))
		})
	}
}

func TestEngine_DigestBitFlips(t *testing.T) {
	t.Parallel()

	secret := mustSecret(t, 18)
	text := func() string {
		token, err := csrf.CreateToken(secret, 8)
		require.NoError(t, err)
		return csrf.Encode(token)
	}()

	token, err := csrf.Decode(text)
	require.NoError(t, err)
	require.Len(t, token, 8+csrf.DigestLength)
	require.True(t, csrf.VerifyToken(token, secret, 8))

	for i := 8; i < len(token); i++ {
		for bit := range 8 {
			flipped := bytes.Clone(token)
			flipped[i] ^= 1 << bit
			assert.False(t, csrf.VerifyToken(flipped, secret, 8), "byte %d bit %d", i, bit)
		}
	}
}

func TestEngine_VerifyTokenString(t *testing.T) {
	t.Parallel()

	secret := mustSecret(t, 18)
	e, err := csrf.NewEngine(8, nil)
	require.NoError(t, err)
	token, err := e.CreateToken(secret)
	require.NoError(t, err)
	text := csrf.Encode(token)

	assert.True(t, e.VerifyTokenString(text, secret))
	assert.False(t, e.VerifyTokenString("", secret))
	assert.False(t, e.VerifyTokenString(text+"\n", secret))
	assert.False(t, e.VerifyTokenString("not/base64+", secret))
	assert.False(t, e.VerifyTokenString(text[:len(text)-2], secret))
}

func TestVerifyToken_SaltLengthMismatch(t *testing.T) {
	t.Parallel()

	secret := mustSecret(t, 18)
	token, err := csrf.CreateToken(secret, 8)
	require.NoError(t, err)

	assert.False(t, csrf.VerifyToken(token, secret, 16))
	assert.False(t, csrf.VerifyToken(token, secret, 0))
}

func BenchmarkCreateToken(b *testing.B) {
	secret := mustSecret(b, 18)
	e, err := csrf.NewEngine(8, nil)
	require.NoError(b, err)

	for b.Loop() {
		if _, err := e.CreateToken(secret); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerifyToken(b *testing.B) {
	secret := mustSecret(b, 18)
	e, err := csrf.NewEngine(8, nil)
	require.NoError(b, err)
	token, err := e.CreateToken(secret)
	require.NoError(b, err)

	for b.Loop() {
		if !e.VerifyToken(token, secret) {
			b.Fatal("valid token rejected")
		}
	}
}
