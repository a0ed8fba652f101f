package cose

import "bytes"

// HeaderListMax is the fixed capacity of a LabelList, for each label kind it
// tracks independently. A header map or a crit array that would need to
// record more than HeaderListMax labels of one kind fails the whole
// verification with ErrTooManyHeaders. Labels are not de-duplicated: a
// repeated label takes a slot each time it is recorded.
const HeaderListMax = 10

// LabelList is a fixed-capacity, append-only collection of header labels of
// two disjoint kinds: signed integers and byte strings. It never allocates:
// both kinds are backed by arrays sized HeaderListMax. Used for collecting a
// header map's unknown labels and a crit array's listed labels.
type LabelList struct {
	ints   [HeaderListMax]int64
	nInts  int
	bstrs  [HeaderListMax][]byte
	nBstrs int
}

// AddInt appends an integer label, in encounter order. Returns
// ErrTooManyHeaders if the integer capacity is already exhausted.
func (l *LabelList) AddInt(v int64) error {
	if l.nInts >= HeaderListMax {
		return ErrTooManyHeaders
	}
	l.ints[l.nInts] = v
	l.nInts++
	return nil
}

// AddBytes appends a byte-string label, in encounter order. The slice
// borrows from the caller's buffer. Returns ErrTooManyHeaders if the
// byte-string capacity is already exhausted.
func (l *LabelList) AddBytes(v []byte) error {
	if l.nBstrs >= HeaderListMax {
		return ErrTooManyHeaders
	}
	l.bstrs[l.nBstrs] = v
	l.nBstrs++
	return nil
}

// Ints returns the integer labels added so far, in encounter order.
func (l *LabelList) Ints() []int64 { return l.ints[:l.nInts] }

// Bytes returns the byte-string labels added so far, in encounter order.
func (l *LabelList) Bytes() [][]byte { return l.bstrs[:l.nBstrs] }

// HasInt reports whether v was added to l.
func (l *LabelList) HasInt(v int64) bool {
	for _, have := range l.Ints() {
		if have == v {
			return true
		}
	}
	return false
}

// HasBytes reports whether v was added to l, compared byte-for-byte.
func (l *LabelList) HasBytes(v []byte) bool {
	for _, have := range l.Bytes() {
		if bytes.Equal(have, v) {
			return true
		}
	}
	return false
}

// HeaderSet is the parsed result of one header map (protected or
// unprotected). Every byte-slice field borrows into the InputMessage passed
// to Verify1; none of them is copied, and none of them outlives that call.
type HeaderSet struct {
	// AlgID is the `alg` header value. AlgorithmReserved (0) means the
	// header was absent: 0 is the reserved IANA slot and can never be a
	// legitimately present value (the parser rejects it outright), so it
	// doubles as the "not present" sentinel.
	AlgID Algorithm

	// Kid is the `kid` header value, or nil if absent.
	Kid []byte

	// IV is the `iv` header value, or nil if absent.
	IV []byte

	// PartialIV is the `partial_iv` header value, or nil if absent. Kept in
	// a field distinct from IV: the two must not both be present in the
	// same header map (see dispatchKnownOrUnknown in headerparser.go).
	PartialIV []byte

	// Unknown collects every label this parser does not handle, in
	// encounter order, so the critical-headers check can cross-reference
	// it against Critical.
	Unknown LabelList

	// Critical collects the labels listed in the `crit` array, in
	// encounter order.
	Critical LabelList
}

// checkCritical fails if any label in h.Critical also appears in h.Unknown,
// i.e. the map carries it and this parser does not handle it. A critical
// label that does not occur in the map at all passes. This is the COSE rule
// that a message must be rejected if it marks an unrecognized extension
// critical (RFC 8152 section 3.1): silently accepting it would let an
// attacker smuggle unauthenticated semantics past the verifier.
func (h *HeaderSet) checkCritical() error {
	for _, label := range h.Unknown.Ints() {
		if h.Critical.HasInt(label) {
			return ErrUnknownCriticalHeader
		}
	}
	for _, label := range h.Unknown.Bytes() {
		if h.Critical.HasBytes(label) {
			return ErrUnknownCriticalHeader
		}
	}
	return nil
}
