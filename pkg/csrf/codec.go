package csrf

import "encoding/base64"

// encoding is unpadded base64url: safe in cookie values, header values and
// urlencoded bodies without escaping.
var encoding = base64.RawURLEncoding.Strict()

// Encode converts raw secret or token bytes to their wire form.
func Encode(b []byte) string {
	return encoding.EncodeToString(b)
}

// Decode reverses Encode. Any input that Encode could not have produced
// yields ErrDecode.
func Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := encoding.DecodeString(s)
	if err != nil {
		return nil, ErrDecode
	}
	// the decoder silently skips CR and LF
	if encoding.EncodedLen(len(b)) != len(s) {
		return nil, ErrDecode
	}
	return b, nil
}
