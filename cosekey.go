package cose

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// COSE_Key key types and curves this core accepts when loading a
// verification key (RFC 8152 section 13).
const (
	keyTypeOKP int64 = 1
	keyTypeEC2 int64 = 2

	curveP256    int64 = 1
	curveP384    int64 = 2
	curveP521    int64 = 3
	curveEd25519 int64 = 6
)

// cborKey is the wire shape of a COSE_Key, decoded with fxamacker/cbor's
// keyasint struct tags rather than a generic map: this core only ever needs
// to read out a public key, never the full RFC 8152 key parameter set.
type cborKey struct {
	Kty int64  `cbor:"1,keyasint"`
	Crv int64  `cbor:"-1,keyasint,omitempty"`
	X   []byte `cbor:"-2,keyasint,omitempty"`
	Y   []byte `cbor:"-3,keyasint,omitempty"`
}

// LoadPublicKey parses a verification key supplied in either PEM-encoded
// SubjectPublicKeyInfo form or as a CBOR COSE_Key, returning a
// *ecdsa.PublicKey or an ed25519.PublicKey suitable for Verify1.
func LoadPublicKey(data []byte) (crypto.PublicKey, error) {
	if block, _ := pem.Decode(data); block != nil {
		pub, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parsing PEM public key: %w", err)
		}
		switch pub.(type) {
		case *ecdsa.PublicKey, ed25519.PublicKey:
			return pub, nil
		default:
			return nil, fmt.Errorf("unsupported PEM public key type %T", pub)
		}
	}
	return parseCOSEKey(data)
}

func parseCOSEKey(data []byte) (crypto.PublicKey, error) {
	var ck cborKey
	if err := decMode.Unmarshal(data, &ck); err != nil {
		return nil, fmt.Errorf("decoding COSE_Key: %w", err)
	}

	switch ck.Kty {
	case keyTypeEC2:
		var curve elliptic.Curve
		switch ck.Crv {
		case curveP256:
			curve = elliptic.P256()
		case curveP384:
			curve = elliptic.P384()
		case curveP521:
			curve = elliptic.P521()
		default:
			return nil, fmt.Errorf("unsupported EC2 curve %d", ck.Crv)
		}
		if len(ck.X) == 0 || len(ck.Y) == 0 {
			return nil, errors.New("COSE_Key: EC2 key missing x or y")
		}
		return &ecdsa.PublicKey{Curve: curve, X: OS2IP(ck.X), Y: OS2IP(ck.Y)}, nil

	case keyTypeOKP:
		if ck.Crv != curveEd25519 {
			return nil, fmt.Errorf("unsupported OKP curve %d", ck.Crv)
		}
		if len(ck.X) != ed25519.PublicKeySize {
			return nil, errors.New("COSE_Key: OKP x has wrong length")
		}
		return ed25519.PublicKey(ck.X), nil

	default:
		return nil, fmt.Errorf("unsupported COSE_Key key type %d", ck.Kty)
	}
}
