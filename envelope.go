package cose

import "github.com/veracruz-project/t-cose-go/internal/cursor"

// sign1Envelope holds the three byte-string elements an envelope decode
// yields (protected, payload, signature), all borrowing into the caller's
// InputMessage, plus the parsed unprotected header set in place of the
// fourth element (parsing it does not require any extra copy, since
// the map lives entirely between the protected and payload bstrs).
type sign1Envelope struct {
	protectedBstr []byte
	unprotected   HeaderSet
	payload       []byte
	signature     []byte
}

// decodeEnvelope consumes the COSE_Sign1_Tagged structure:
//
//	COSE_Sign1_Tagged = #6.18(COSE_Sign1)
//	COSE_Sign1 = [
//	    Headers,
//	    payload : bstr,
//	    signature : bstr
//	]
//	Headers = ( protected : empty_or_serialized_map, unprotected : header_map )
//
// The tag and the 4-element array arity are both mandatory here; the outer
// array may not use indefinite-length encoding (RFC 8152 section 4.2 does
// not require the tag, but this core does — see spec's design notes).
func decodeEnvelope(message []byte) (sign1Envelope, error) {
	c := cursor.New(message)

	tagHead, err := c.ReadHead()
	if err != nil {
		return sign1Envelope{}, ErrCBORNotWellFormed
	}
	if tagHead.Major != cursor.MajorTag {
		return sign1Envelope{}, ErrSign1Format
	}
	if tagHead.Arg != CBORTagSign1Message {
		return sign1Envelope{}, ErrSign1Format
	}

	arrHead, err := c.ReadHead()
	if err != nil {
		return sign1Envelope{}, ErrCBORNotWellFormed
	}
	if arrHead.Major != cursor.MajorArray || arrHead.Indefinite {
		return sign1Envelope{}, ErrSign1Format
	}
	if arrHead.Arg != 4 {
		return sign1Envelope{}, ErrSign1Format
	}

	protectedBstr, err := readTopLevelBstr(c)
	if err != nil {
		return sign1Envelope{}, err
	}

	unprotected, err := parseUnprotected(c)
	if err != nil {
		return sign1Envelope{}, err
	}

	payload, err := readTopLevelBstr(c)
	if err != nil {
		return sign1Envelope{}, err
	}

	signature, err := readTopLevelBstr(c)
	if err != nil {
		return sign1Envelope{}, err
	}

	if !c.Done() {
		// QCBOR-style "Finish" check: a COSE_Sign1 message is the entire
		// input; anything trailing the 4-array means the stream was not a
		// single well-formed data item.
		return sign1Envelope{}, ErrCBORNotWellFormed
	}

	return sign1Envelope{
		protectedBstr: protectedBstr,
		unprotected:   unprotected,
		payload:       payload,
		signature:     signature,
	}, nil
}

// readTopLevelBstr reads one of the three definite-length byte-string
// elements of the COSE_Sign1 array (protected, payload, signature).
func readTopLevelBstr(c *cursor.Cursor) ([]byte, error) {
	h, err := c.ReadHead()
	if err != nil {
		return nil, ErrCBORNotWellFormed
	}
	if h.Major != cursor.MajorBytes || h.Indefinite {
		return nil, ErrSign1Format
	}
	b, err := c.ReadFullBytes(h)
	if err != nil {
		return nil, ErrCBORNotWellFormed
	}
	return b, nil
}
