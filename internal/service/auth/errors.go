package auth

import "errors"

// Token verification failure kinds. These distinctions exist for diagnostics
// and logging only: the API layer collapses every one of them into the same
// generic 401 so callers cannot learn which check failed.
var (
	// ErrMalformedToken indicates the token string could not be parsed.
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrBadSignature indicates the signature does not verify under the
	// current signing key.
	ErrBadSignature = errors.New("authentication token signature invalid")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingSubject indicates the claim set lacks a principal identifier.
	ErrMissingSubject = errors.New("authentication token has no subject")

	// ErrInvalidSubject indicates the principal identifier is not a
	// well-formed positive integer.
	ErrInvalidSubject = errors.New("authentication token subject is invalid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)

// IsVerificationError reports whether err is one of the token verification
// failure kinds above.
func IsVerificationError(err error) bool {
	return errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrBadSignature) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMissingSubject) ||
		errors.Is(err, ErrInvalidSubject) ||
		errors.Is(err, ErrMissingToken)
}
