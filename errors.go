package cose

import "errors"

// Error kinds returned by Verify1. Each corresponds to one outcome in the
// verification pipeline; the first error encountered terminates the
// pipeline immediately (propagation policy: no partial results).
var (
	// ErrCBORNotWellFormed means the decoder rejected the byte stream
	// itself: a truncated head, a truncated payload, or a reserved
	// additional-info value.
	ErrCBORNotWellFormed = errors.New("cose: input is not well-formed CBOR")

	// ErrSign1Format means the input was well-formed CBOR but the wrong
	// shape for a COSE_Sign1 message (missing tag 18, wrong array arity,
	// a header value of the wrong CBOR type).
	ErrSign1Format = errors.New("cose: input is not a COSE_Sign1 message")

	// ErrCBORStructure means a header label or a crit-array element was of
	// a type other than signed integer or byte string.
	ErrCBORStructure = errors.New("cose: header label or value has unacceptable CBOR type")

	// ErrUnsupportedAlgorithm means the `alg` header was absent, reserved
	// (0), out of int32 range, or not one of the algorithms this verifier
	// can dispatch to.
	ErrUnsupportedAlgorithm = errors.New("cose: unsupported or missing signing algorithm")

	// ErrTooManyHeaders means a header map or crit array produced more
	// labels of one kind (integer or byte string) than HeaderListMax.
	ErrTooManyHeaders = errors.New("cose: too many header labels")

	// ErrUnknownCriticalHeader means a label listed in `crit` was not one
	// this parser handles.
	ErrUnknownCriticalHeader = errors.New("cose: unknown critical header label")

	// ErrMissingKeyID means RequireKID was set but the unprotected header
	// had no `kid`.
	ErrMissingKeyID = errors.New("cose: message has no key id")

	// ErrShortCircuitNotAllowed means the message used the well-known
	// short-circuit key id but AllowShortCircuit was not set.
	ErrShortCircuitNotAllowed = errors.New("cose: short-circuit signature not allowed")

	// ErrSignatureVerification means the cryptographic check failed: the
	// hash did not match a short-circuit signature, or the public-key
	// verification primitive rejected the signature.
	ErrSignatureVerification = errors.New("cose: signature verification failed")

	// ErrUnavailableHashFunc means the hash algorithm selected by `alg` is
	// not linked into the binary.
	ErrUnavailableHashFunc = errors.New("cose: hash function is not available")

	// ErrInvalidPublicKey means the supplied key does not match the shape
	// the selected algorithm requires (wrong key type, unsupported curve).
	ErrInvalidPublicKey = errors.New("cose: invalid public key for algorithm")
)
