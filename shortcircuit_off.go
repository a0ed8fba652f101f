//go:build !shortcircuit

package cose

// shortCircuitSupported is false in default builds: see shortcircuit_on.go.
const shortCircuitSupported = false

func isShortCircuitSignature(alg Algorithm, tbs, signature []byte) bool {
	return false
}
