package cose

import (
	"math"

	"github.com/veracruz-project/t-cose-go/internal/cursor"
)

// Integer header labels recognized by this parser, per the COSE Header
// Parameters registry (RFC 8152 section 3.1).
const (
	headerLabelAlg         int64 = 1
	headerLabelCrit        int64 = 2
	headerLabelContentType int64 = 3
	headerLabelKID         int64 = 4
	headerLabelIV          int64 = 5
	headerLabelPartialIV   int64 = 6
)

// parseProtected parses the protected header map wrapped in a bstr. An
// empty (zero-length) bstr is the empty map, per RFC 8152's
// empty_or_serialized_map. The bstr's bytes are retained by the caller and
// re-hashed byte-for-byte in the TBS structure: this function only reads
// them, never re-encodes them.
func parseProtected(protectedBstr []byte) (HeaderSet, error) {
	if len(protectedBstr) == 0 {
		return HeaderSet{}, nil
	}
	c := cursor.New(protectedBstr)
	hs, err := parseHeaderMap(c)
	if err != nil {
		return HeaderSet{}, err
	}
	if c.Pos() != c.Len() {
		// The protected bstr must contain exactly one CBOR item (the map);
		// anything trailing is not well-formed as a single data item.
		return HeaderSet{}, ErrCBORNotWellFormed
	}
	return hs, nil
}

// parseUnprotected parses the bare unprotected header map at the current
// position of the live envelope cursor, leaving the cursor positioned
// immediately after the map for the envelope decoder to continue reading
// the payload and signature.
func parseUnprotected(c *cursor.Cursor) (HeaderSet, error) {
	return parseHeaderMap(c)
}

// parseHeaderMap parses one entire header map (protected or unprotected)
// starting at the cursor's current position, dispatching each entry to the
// known-header table of RFC 8152 section 3.1 or collecting it as unknown.
// It runs the critical-headers check before returning.
func parseHeaderMap(c *cursor.Cursor) (HeaderSet, error) {
	var hs HeaderSet

	mh, err := c.ReadHead()
	if err != nil {
		return HeaderSet{}, ErrCBORNotWellFormed
	}
	if mh.Major != cursor.MajorMap {
		return HeaderSet{}, ErrSign1Format
	}

	remaining := mh.Arg
	for {
		if mh.Indefinite {
			if c.PeekIsBreak() {
				_ = c.ConsumeBreak()
				break
			}
		} else {
			if remaining == 0 {
				break
			}
			remaining--
		}

		lh, err := c.ReadHead()
		if err != nil {
			return HeaderSet{}, ErrCBORNotWellFormed
		}

		switch lh.Major {
		case cursor.MajorUint, cursor.MajorNeg:
			label, err := cursor.ReadInt(lh)
			if err != nil {
				return HeaderSet{}, ErrCBORStructure
			}
			if err := dispatchKnownOrUnknown(c, &hs, label); err != nil {
				return HeaderSet{}, err
			}
		case cursor.MajorBytes:
			if lh.Indefinite {
				return HeaderSet{}, ErrCBORStructure
			}
			label, err := c.ReadFullBytes(lh)
			if err != nil {
				return HeaderSet{}, ErrCBORNotWellFormed
			}
			if err := hs.Unknown.AddBytes(label); err != nil {
				return HeaderSet{}, err
			}
			if err := c.SkipOne(); err != nil {
				return HeaderSet{}, ErrCBORNotWellFormed
			}
		default:
			return HeaderSet{}, ErrCBORStructure
		}
	}

	if err := hs.checkCritical(); err != nil {
		return HeaderSet{}, err
	}
	return hs, nil
}

// dispatchKnownOrUnknown handles one map entry whose label is the signed
// integer label, consuming exactly one value item from c.
func dispatchKnownOrUnknown(c *cursor.Cursor, hs *HeaderSet, label int64) error {
	switch label {
	case headerLabelAlg:
		vh, err := c.ReadHead()
		if err != nil {
			return ErrCBORNotWellFormed
		}
		if vh.Major != cursor.MajorUint && vh.Major != cursor.MajorNeg {
			// Includes text-string algorithm identifiers, which this core
			// does not support.
			return ErrUnsupportedAlgorithm
		}
		val, err := cursor.ReadInt(vh)
		if err != nil {
			return ErrUnsupportedAlgorithm
		}
		if val == 0 || val > math.MaxInt32 || val < math.MinInt32 {
			return ErrUnsupportedAlgorithm
		}
		hs.AlgID = Algorithm(val)
		return nil

	case headerLabelCrit:
		return parseCritical(c, hs)

	case headerLabelContentType:
		// Parsed but not used by verification; accept any type.
		if err := c.SkipOne(); err != nil {
			return ErrCBORNotWellFormed
		}
		return nil

	case headerLabelKID:
		v, err := readBstrValue(c)
		if err != nil {
			return err
		}
		hs.Kid = v
		return nil

	case headerLabelIV:
		v, err := readBstrValue(c)
		if err != nil {
			return err
		}
		if hs.PartialIV != nil {
			return ErrSign1Format
		}
		hs.IV = v
		return nil

	case headerLabelPartialIV:
		v, err := readBstrValue(c)
		if err != nil {
			return err
		}
		if hs.IV != nil {
			return ErrSign1Format
		}
		hs.PartialIV = v
		return nil

	default:
		if err := hs.Unknown.AddInt(label); err != nil {
			return err
		}
		if err := c.SkipOne(); err != nil {
			return ErrCBORNotWellFormed
		}
		return nil
	}
}

// readBstrValue reads a value item that must be a definite-length byte
// string, returning ErrSign1Format for any other shape.
func readBstrValue(c *cursor.Cursor) ([]byte, error) {
	vh, err := c.ReadHead()
	if err != nil {
		return nil, ErrCBORNotWellFormed
	}
	if vh.Major != cursor.MajorBytes || vh.Indefinite {
		return nil, ErrSign1Format
	}
	v, err := c.ReadFullBytes(vh)
	if err != nil {
		return nil, ErrCBORNotWellFormed
	}
	return v, nil
}

// parseCritical parses the `crit` header value: an array of labels that the
// recipient must understand or reject (RFC 8152 section 3.1). Each element
// must be a signed integer or a definite-length byte string.
func parseCritical(c *cursor.Cursor, hs *HeaderSet) error {
	ah, err := c.ReadHead()
	if err != nil {
		return ErrCBORNotWellFormed
	}
	if ah.Major != cursor.MajorArray {
		return ErrSign1Format
	}

	remaining := ah.Arg
	for {
		if ah.Indefinite {
			if c.PeekIsBreak() {
				_ = c.ConsumeBreak()
				return nil
			}
		} else {
			if remaining == 0 {
				return nil
			}
			remaining--
		}

		eh, err := c.ReadHead()
		if err != nil {
			return ErrCBORNotWellFormed
		}
		switch eh.Major {
		case cursor.MajorUint, cursor.MajorNeg:
			v, err := cursor.ReadInt(eh)
			if err != nil {
				return ErrCBORStructure
			}
			if err := hs.Critical.AddInt(v); err != nil {
				return err
			}
		case cursor.MajorBytes:
			if eh.Indefinite {
				return ErrCBORStructure
			}
			v, err := c.ReadFullBytes(eh)
			if err != nil {
				return ErrCBORNotWellFormed
			}
			if err := hs.Critical.AddBytes(v); err != nil {
				return err
			}
		default:
			return ErrCBORStructure
		}
	}
}
