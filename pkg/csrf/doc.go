// Package csrf implements synchronizer-token CSRF protection without
// server-side storage.
//
// Each client holds a random secret in a cookie. Every processed response
// carries a fresh token derived from that secret:
//
//	token = salt ‖ HMAC-SHA256(secret, salt)
//
// The salt is random per token, so tokens issued from the same secret are
// unlinkable while all of them verify. A state-changing request must echo a
// token back in a header or a body field; it passes only if the token was
// derived from the secret in the request's cookie.
//
// # Usage
//
//	import "github.com/dmitrymomot/csrfkit/pkg/csrf"
//
//	cfg := csrf.DefaultConfig()
//	cfg.ExcludePathPrefixes = []string{"/api/public"}
//
//	protector, err := csrf.New(cfg, csrf.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	http.ListenAndServe(":8080", protector.Middleware(mux))
//
// Handlers read the issued token with TokenFromContext, or render it with the
// templ components HiddenField and MetaTag. The token is also written to the
// response header named by Config.Token.ResponseHeader.
//
// # Building blocks
//
// The engine is usable without HTTP:
//
//	secret, _ := csrf.GenerateSecret(18)
//	token, _ := csrf.CreateToken(secret, 8)
//	ok := csrf.VerifyToken(token, secret, 8)
//
// Encode and Decode move secrets and tokens as unpadded base64url text.
// ResolveToken finds a submitted token in a request: header first, then a
// urlencoded, multipart, JSON, Datastar or text/plain body.
//
// # Error Handling
//
// Verification never returns details to the client. Decode failures, length
// mismatches, missing tokens and digest mismatches all surface as
// ErrTokenInvalid, rendered as 403 by DefaultErrorHandler. ErrInvalidLength and
// ErrInvalidConfig are construction-time errors; ErrEntropy means the random
// source failed and the request cannot be served safely.
package csrf
