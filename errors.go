package tokens

import "errors"

// Sentinel errors returned by vocabulary and tokenizer construction.
var (
	// ErrNoFallback is returned when a tokenizer is constructed over a
	// TokenSet that has neither a bits fallback nor a hex fallback.
	ErrNoFallback = errors.New("tokens: vocabulary has no bits or hex fallback")

	// ErrDuplicateToken is wrapped in the panic raised when a string or
	// byte value is inserted twice into a TokenSet's indices (see
	// TokenSet invariants); AddString and AddByte return the existing
	// token instead.
	ErrDuplicateToken = errors.New("tokens: token string already present")

	// ErrMandatoryToken is returned by RemoveToken when asked to remove a
	// mandatory (fallback alphabet) token.
	ErrMandatoryToken = errors.New("tokens: cannot remove a mandatory token")

	// ErrTokenNotFound is returned by RemoveToken for a token not present
	// in the set.
	ErrTokenNotFound = errors.New("tokens: token not found in set")

	// ErrBadArtifact indicates a saved tokenizer artifact is malformed:
	// not valid JSON, missing stats.ntokens, or holding a token entry that
	// is neither a string nor a byte array. Artifacts carry no version.
	ErrBadArtifact = errors.New("tokens: malformed tokenizer artifact")
)
