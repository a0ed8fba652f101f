//go:build shortcircuit

package cose

import (
	"bytes"
	"crypto/ed25519"
)

// shortCircuitSupported reports whether this build accepts short-circuit
// signatures at all. Verify1 rejects VerifyOptionAllowShortCircuit with
// ErrShortCircuitNotAllowed unless the binary was built with the
// "shortcircuit" tag: short-circuit verification accepts a message without
// ever checking a real signature, so it must not be reachable in a
// production binary by a caller flipping a single option bit.
const shortCircuitSupported = true

// shortCircuitExpectedLen returns the byte length a short-circuit signature
// must have for alg, mirroring the length a real signature would have.
func shortCircuitExpectedLen(alg Algorithm) int {
	if ks := alg.ecdsaKeySize(); ks != 0 {
		return 2 * ks
	}
	if alg == AlgorithmEdDSA {
		return ed25519.SignatureSize
	}
	return 0
}

// isShortCircuitSignature reports whether signature is the short-circuit
// pattern for tbs: tbs repeated (and truncated) to the algorithm's expected
// signature length. There is no key material involved by design.
func isShortCircuitSignature(alg Algorithm, tbs, signature []byte) bool {
	want := shortCircuitExpectedLen(alg)
	if want == 0 || len(signature) != want || len(tbs) == 0 {
		return false
	}
	expanded := make([]byte, want)
	for i := range expanded {
		expanded[i] = tbs[i%len(tbs)]
	}
	return bytes.Equal(expanded, signature)
}
