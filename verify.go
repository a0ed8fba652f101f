package cose

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
)

// ShortCircuitKid is the fixed, implementation-defined key id that marks a
// short-circuit debug signature (spec's "short-circuit kid", t_cose's
// T_COSE_SHORT_CIRCUIT_KID). It is not a secret: the whole point of the
// short-circuit path is that anyone can compute a valid one from public
// bytes alone. What keeps it from being a verification bypass is that
// Verify1 only takes the short-circuit branch for a message whose
// unprotected kid is exactly this value, and only when the caller also set
// VerifyOptionAllowShortCircuit in a build tagged "shortcircuit".
var ShortCircuitKid = []byte("t-cose-go-short-circuit-kid")

// VerifyOptions is a bitmask of optional verification behaviors passed to
// Verify1. The zero value performs plain COSE_Sign1 verification against
// the supplied public key with no extra requirements.
type VerifyOptions uint32

const (
	// VerifyOptionRequireKID fails verification with ErrMissingKeyID unless
	// the message carries a `kid` header in the unprotected bucket. A
	// protected-header kid does not satisfy this option.
	VerifyOptionRequireKID VerifyOptions = 1 << iota

	// VerifyOptionAllowShortCircuit additionally accepts a short-circuit
	// signature (see shortcircuit_on.go) without checking it against
	// publicKey at all. Only has any effect in a binary built with the
	// "shortcircuit" tag; otherwise Verify1 returns
	// ErrShortCircuitNotAllowed as soon as the option is set.
	VerifyOptionAllowShortCircuit
)

// Verify1 decodes message as a COSE_Sign1_Tagged structure, checks its
// headers, and verifies its signature against publicKey. On success it
// returns the payload, borrowed from message. On failure it returns one of
// the sentinel errors in errors.go and a nil payload.
//
// publicKey must be a *ecdsa.PublicKey for ES256/ES384/ES512 or an
// ed25519.PublicKey for EdDSA; it is ignored when the message carries a
// valid short-circuit signature and opts permits one.
func Verify1(message []byte, publicKey crypto.PublicKey, opts VerifyOptions) ([]byte, error) {
	if opts&VerifyOptionAllowShortCircuit != 0 && !shortCircuitSupported {
		return nil, ErrShortCircuitNotAllowed
	}

	env, err := decodeEnvelope(message)
	if err != nil {
		return nil, err
	}

	protected, err := parseProtected(env.protectedBstr)
	if err != nil {
		return nil, err
	}

	switch protected.AlgID {
	case AlgorithmES256, AlgorithmES384, AlgorithmES512, AlgorithmEdDSA:
	default:
		return nil, ErrUnsupportedAlgorithm
	}

	if opts&VerifyOptionRequireKID != 0 && len(env.unprotected.Kid) == 0 {
		return nil, ErrMissingKeyID
	}

	tbs, err := computeToBeSigned(protected.AlgID, env.protectedBstr, env.payload)
	if err != nil {
		return nil, err
	}

	if bytes.Equal(env.unprotected.Kid, ShortCircuitKid) {
		if opts&VerifyOptionAllowShortCircuit == 0 {
			return nil, ErrShortCircuitNotAllowed
		}
		if !isShortCircuitSignature(protected.AlgID, tbs, env.signature) {
			return nil, ErrSignatureVerification
		}
		return env.payload, nil
	}

	if err := verifySignature(protected.AlgID, publicKey, tbs, env.signature); err != nil {
		return nil, err
	}
	return env.payload, nil
}

// verifySignature dispatches to the algorithm-specific signature check. tbs
// is either a digest (ECDSA) or the full Sig_structure (EdDSA), as produced
// by computeToBeSigned.
func verifySignature(alg Algorithm, publicKey crypto.PublicKey, tbs, signature []byte) error {
	switch alg {
	case AlgorithmES256, AlgorithmES384, AlgorithmES512:
		pub, ok := publicKey.(*ecdsa.PublicKey)
		if !ok {
			return ErrInvalidPublicKey
		}
		return verifyECDSASignature(alg, pub, tbs, signature)
	case AlgorithmEdDSA:
		pub, ok := publicKey.(ed25519.PublicKey)
		if !ok {
			return ErrInvalidPublicKey
		}
		if !ed25519.Verify(pub, tbs, signature) {
			return ErrSignatureVerification
		}
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// verifyECDSASignature checks an RFC 8152 section 8.1 ECDSA signature: a
// fixed-width r||s concatenation, not the ASN.1 DER form crypto/ecdsa's
// SignASN1 produces.
func verifyECDSASignature(alg Algorithm, pub *ecdsa.PublicKey, tbs, signature []byte) error {
	keySize := alg.ecdsaKeySize()
	if keySize == 0 {
		return ErrUnsupportedAlgorithm
	}
	if len(signature) != 2*keySize {
		return ErrSignatureVerification
	}
	r := OS2IP(signature[:keySize])
	s := OS2IP(signature[keySize:])
	if !ecdsa.Verify(pub, tbs, r, s) {
		return ErrSignatureVerification
	}
	return nil
}
