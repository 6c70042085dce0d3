// Package cookie writes and reads HTTP cookies with shared default attributes
// and optional HMAC-SHA256 signing.
//
// A Manager is created with zero or more signing secrets (each at least 32
// bytes) and default Options. Without secrets only Set, Get and Delete are
// available; SetSigned and GetSigned return ErrNoSecret.
//
//	man, err := cookie.New(nil, cookie.WithSecure(true), cookie.WithSameSite(http.SameSiteStrictMode))
//	if err != nil {
//	    return err
//	}
//	man.Set(w, "_csrfSecret", value)
//
// Signed values have the form base64url(value) "." base64url(mac). The first
// secret signs; every secret is tried on read, so keys can be rotated by
// prepending the new one.
//
// Package-level sentinel errors (ErrCookieNotFound, ErrInvalidSignature,
// ErrInvalidFormat, ...) can be matched with errors.Is.
package cookie
