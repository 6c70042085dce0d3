package csrf

import "errors"

var (
	ErrInvalidLength = errors.New("csrf.invalid_length")
	ErrDecode        = errors.New("csrf.decode_failed")
	ErrTokenInvalid  = errors.New("csrf.token_invalid")
	ErrEntropy       = errors.New("csrf.entropy_failure")
	ErrBodyTooLarge  = errors.New("csrf.body_too_large")
	ErrInvalidConfig = errors.New("csrf.invalid_config")
)
