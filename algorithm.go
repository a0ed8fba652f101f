package cose

import (
	"crypto"
	"strconv"
)

// Algorithms recognized by this verifier, per the COSE Algorithms registry.
//
// Reference: https://www.iana.org/assignments/cose/cose.xhtml#algorithms
// RFC 8152 16.4: https://datatracker.ietf.org/doc/html/rfc8152#section-16.4
const (
	// AlgorithmReserved is the reserved IANA slot (value 0). HeaderSet.AlgID
	// holds it when the `alg` header is absent; an `alg` header explicitly set
	// to 0 is rejected by the parser with ErrUnsupportedAlgorithm.
	AlgorithmReserved Algorithm = 0

	// ECDSA w/ SHA-256.
	AlgorithmES256 Algorithm = -7

	// ECDSA w/ SHA-384.
	AlgorithmES384 Algorithm = -35

	// ECDSA w/ SHA-512.
	AlgorithmES512 Algorithm = -36

	// PureEdDSA.
	AlgorithmEdDSA Algorithm = -8
)

// Algorithm represents an IANA algorithm entry in the COSE Algorithms
// registry. Only the signature algorithms this verifier can dispatch to are
// given names; any other non-zero value in the int32 range decodes
// successfully as a HeaderSet field but is rejected with
// ErrUnsupportedAlgorithm once verification is attempted. Values outside the
// int32 range are rejected with ErrUnsupportedAlgorithm while parsing.
type Algorithm int64

// String returns the name of the algorithm, or its bare numeric value if
// unrecognized.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmES256:
		return "ES256"
	case AlgorithmES384:
		return "ES384"
	case AlgorithmES512:
		return "ES512"
	case AlgorithmEdDSA:
		return "EdDSA"
	case AlgorithmReserved:
		return "Reserved"
	default:
		return "Algorithm(" + strconv.FormatInt(int64(a), 10) + ")"
	}
}

// hashFunc returns the hash associated with the algorithm. EdDSA signs the
// message directly and has no associated hash; hashFunc returns 0 for it.
func (a Algorithm) hashFunc() crypto.Hash {
	switch a {
	case AlgorithmES256:
		return crypto.SHA256
	case AlgorithmES384:
		return crypto.SHA384
	case AlgorithmES512:
		return crypto.SHA512
	default:
		return 0
	}
}

// ecdsaKeySize returns the fixed-width r/s field size in bytes used to encode
// an ECDSA signature under RFC 8152 section 8.1. Returns 0 if a is not one of
// the ECDSA algorithms recognized here.
func (a Algorithm) ecdsaKeySize() int {
	switch a {
	case AlgorithmES256:
		return 32
	case AlgorithmES384:
		return 48
	case AlgorithmES512:
		return 66
	default:
		return 0
	}
}
