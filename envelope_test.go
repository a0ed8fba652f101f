package cose

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireSign1 struct {
	_           struct{} `cbor:",toarray"`
	Protected   []byte
	Unprotected map[int]interface{}
	Payload     []byte
	Signature   []byte
}

func buildEnvelope(t *testing.T, protected []byte, unprotected map[int]interface{}, payload, signature []byte) []byte {
	t.Helper()
	if unprotected == nil {
		unprotected = map[int]interface{}{}
	}
	w := wireSign1{Protected: protected, Unprotected: unprotected, Payload: payload, Signature: signature}
	b, err := encMode.Marshal(cbor.Tag{Number: CBORTagSign1Message, Content: w})
	require.NoError(t, err)
	return b
}

func TestDecodeEnvelope_Valid(t *testing.T) {
	protected := marshalMap(t, map[int]interface{}{1: int64(-7)})
	msg := buildEnvelope(t, protected, map[int]interface{}{4: []byte("kid-1")}, []byte("hello"), []byte("sig-bytes"))

	env, err := decodeEnvelope(msg)
	require.NoError(t, err)
	assert.Equal(t, protected, env.protectedBstr)
	assert.Equal(t, []byte("hello"), env.payload)
	assert.Equal(t, []byte("sig-bytes"), env.signature)
	assert.Equal(t, []byte("kid-1"), env.unprotected.Kid)
}

func TestDecodeEnvelope_EmptyInput(t *testing.T) {
	_, err := decodeEnvelope(nil)
	assert.ErrorIs(t, err, ErrCBORNotWellFormed)
}

func TestDecodeEnvelope_WrongTagNumber(t *testing.T) {
	w := wireSign1{Protected: []byte{}, Unprotected: map[int]interface{}{}, Payload: []byte("p"), Signature: []byte("s")}
	b, err := encMode.Marshal(cbor.Tag{Number: 17, Content: w})
	require.NoError(t, err)

	_, err = decodeEnvelope(b)
	assert.ErrorIs(t, err, ErrSign1Format)
}

func TestDecodeEnvelope_Untagged(t *testing.T) {
	w := wireSign1{Protected: []byte{}, Unprotected: map[int]interface{}{}, Payload: []byte("p"), Signature: []byte("s")}
	b, err := encMode.Marshal(w)
	require.NoError(t, err)

	_, err = decodeEnvelope(b)
	assert.ErrorIs(t, err, ErrSign1Format)
}

func TestDecodeEnvelope_WrongArity(t *testing.T) {
	type wireSign1Bad struct {
		_         struct{} `cbor:",toarray"`
		Protected []byte
		Payload   []byte
		Signature []byte
	}
	b, err := encMode.Marshal(cbor.Tag{
		Number:  CBORTagSign1Message,
		Content: wireSign1Bad{Protected: []byte{}, Payload: []byte("p"), Signature: []byte("s")},
	})
	require.NoError(t, err)

	_, err = decodeEnvelope(b)
	assert.ErrorIs(t, err, ErrSign1Format)
}

func TestDecodeEnvelope_IndefiniteOuterArrayRejected(t *testing.T) {
	raw := []byte{0xd2, 0x9f, 0x40, 0xa0, 0x40, 0x40, 0xff}
	_, err := decodeEnvelope(raw)
	assert.ErrorIs(t, err, ErrSign1Format)
}

func TestDecodeEnvelope_TrailingBytesRejected(t *testing.T) {
	msg := buildEnvelope(t, []byte{}, nil, []byte("p"), []byte("s"))
	msg = append(msg, 0x00)

	_, err := decodeEnvelope(msg)
	assert.ErrorIs(t, err, ErrCBORNotWellFormed)
}

func TestDecodeEnvelope_NonBstrPayloadRejected(t *testing.T) {
	type wireSign1Bad struct {
		_           struct{} `cbor:",toarray"`
		Protected   []byte
		Unprotected map[int]interface{}
		Payload     int64
		Signature   []byte
	}
	b, err := encMode.Marshal(cbor.Tag{
		Number: CBORTagSign1Message,
		Content: wireSign1Bad{
			Protected: []byte{}, Unprotected: map[int]interface{}{}, Payload: 42, Signature: []byte("s"),
		},
	})
	require.NoError(t, err)

	_, err = decodeEnvelope(b)
	assert.ErrorIs(t, err, ErrSign1Format)
}
