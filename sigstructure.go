package cose

import (
	"bytes"
	"io"

	"github.com/veracruz-project/t-cose-go/internal/cursor"
)

// sigContextSignature1 is the fixed context string for a COSE_Sign1's
// Sig_structure, RFC 8152 section 4.4.
const sigContextSignature1 = "Signature1"

// writeSigStructure writes the Sig_structure that a COSE_Sign1 signs, per
// RFC 8152 section 4.4:
//
//	Sig_structure = [
//	    context : "Signature1",
//	    body_protected : empty_or_serialized_map,
//	    external_aad : bstr,
//	    payload : bstr
//	]
//
// external_aad is always the empty byte string: this core does not support
// supplying externally-authenticated data. protectedBstr and payload are
// written as-is, never re-encoded: they are already the exact bytes that
// were hashed (or not) at signing time.
func writeSigStructure(w io.Writer, protectedBstr, payload []byte) error {
	var head [9]byte

	if _, err := w.Write(cursor.EncodeHead(head[:0], cursor.MajorArray, 4)); err != nil {
		return err
	}
	if _, err := w.Write(cursor.EncodeHead(head[:0], cursor.MajorText, uint64(len(sigContextSignature1)))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, sigContextSignature1); err != nil {
		return err
	}
	if _, err := w.Write(cursor.EncodeHead(head[:0], cursor.MajorBytes, uint64(len(protectedBstr)))); err != nil {
		return err
	}
	if _, err := w.Write(protectedBstr); err != nil {
		return err
	}
	if _, err := w.Write(cursor.EncodeHead(head[:0], cursor.MajorBytes, 0)); err != nil {
		return err
	}
	if _, err := w.Write(cursor.EncodeHead(head[:0], cursor.MajorBytes, uint64(len(payload)))); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return nil
}

// computeToBeSigned produces the bytes that a signature is verified against
// for alg. For hash-based algorithms (ECDSA) the Sig_structure is streamed
// straight into the hash, so a large payload is never held in memory twice.
// For EdDSA, which signs the message itself rather than a digest, the full
// Sig_structure is materialized since crypto/ed25519 has no streaming API.
func computeToBeSigned(alg Algorithm, protectedBstr, payload []byte) ([]byte, error) {
	h := alg.hashFunc()
	if h == 0 {
		var buf bytes.Buffer
		if err := writeSigStructure(&buf, protectedBstr, payload); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if !h.Available() {
		return nil, ErrUnavailableHashFunc
	}
	hh := h.New()
	if err := writeSigStructure(hh, protectedBstr, payload); err != nil {
		return nil, err
	}
	return hh.Sum(nil), nil
}
