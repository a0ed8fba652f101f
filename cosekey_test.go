package cose

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPublicKey_PEM_ECDSA(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	got, err := LoadPublicKey(block)
	require.NoError(t, err)

	pub, ok := got.(*ecdsa.PublicKey)
	require.True(t, ok)
	assert.Equal(t, priv.PublicKey.X, pub.X)
	assert.Equal(t, priv.PublicKey.Y, pub.Y)
}

func TestLoadPublicKey_PEM_Ed25519(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	got, err := LoadPublicKey(block)
	require.NoError(t, err)
	assert.Equal(t, pub, got)
}

func TestLoadPublicKey_COSEKey_EC2(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	ck := cborKey{
		Kty: keyTypeEC2,
		Crv: curveP256,
		X:   priv.PublicKey.X.Bytes(),
		Y:   priv.PublicKey.Y.Bytes(),
	}
	b, err := encMode.Marshal(ck)
	require.NoError(t, err)

	got, err := LoadPublicKey(b)
	require.NoError(t, err)

	pub, ok := got.(*ecdsa.PublicKey)
	require.True(t, ok)
	assert.Equal(t, priv.PublicKey.X, pub.X)
	assert.Equal(t, priv.PublicKey.Y, pub.Y)
}

func TestLoadPublicKey_COSEKey_OKP(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	ck := cborKey{Kty: keyTypeOKP, Crv: curveEd25519, X: []byte(pub)}
	b, err := encMode.Marshal(ck)
	require.NoError(t, err)

	got, err := LoadPublicKey(b)
	require.NoError(t, err)
	assert.Equal(t, pub, got)
}

func TestLoadPublicKey_COSEKey_UnsupportedType(t *testing.T) {
	ck := cborKey{Kty: 4} // Symmetric, not handled here
	b, err := encMode.Marshal(ck)
	require.NoError(t, err)

	_, err = LoadPublicKey(b)
	assert.Error(t, err)
}

func TestLoadPublicKey_COSEKey_MissingCoordinate(t *testing.T) {
	ck := cborKey{Kty: keyTypeEC2, Crv: curveP256, X: []byte{0x01}}
	b, err := encMode.Marshal(ck)
	require.NoError(t, err)

	_, err = LoadPublicKey(b)
	assert.Error(t, err)
}
