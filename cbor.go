package cose

import "github.com/fxamacker/cbor/v2"

// CBORTagSign1Message is the IANA CBOR tag registered for COSE_Sign1.
//
// Reference: https://www.iana.org/assignments/cbor-tags/cbor-tags.xhtml#tags
const CBORTagSign1Message = 18

// Pre-configured fxamacker/cbor modes. These are used outside the
// verification pipeline proper: decMode by cosekey.go to decode COSE_Key
// material, and encMode by the package's tests to build fixtures. Neither
// Inspect nor the CLI's inspect command uses them. The pipeline itself (envelope.go, headerparser.go, sigstructure.go) walks the
// input with internal/cursor instead, since it needs structural control
// (nesting level, bounded-capacity label collection, zero-copy byte slices)
// that a reflection-based Unmarshal does not give it.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(err)
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
		IntDec:      cbor.IntDecConvertSigned,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(err)
	}
}
