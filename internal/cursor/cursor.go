// Package cursor implements a minimal, allocation-free structural walk over
// a CBOR-encoded byte string: enough to navigate arrays, maps, tags and
// definite/indefinite lengths item by item without materializing a decoded
// tree. It does not interpret floats, bignums or text validity beyond what
// is needed to skip past them; leaf values that the caller actually cares
// about (small integers, definite-length byte strings) are decoded directly
// here since both are a handful of bytes read off the head.
//
// This exists because neither the standard library nor the CBOR codec used
// elsewhere in this module expose an item-at-a-time cursor with nesting-level
// tracking; everything it does not need to know about (UTF-8 validation,
// float16/32/64, bignums) is left to the caller to decode via the real CBOR
// library on the sub-slice this package locates.
package cursor

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrMalformed indicates the input is not well-formed CBOR at the byte level
// (truncated head, truncated payload, reserved additional-info value, an
// indefinite-length marker on a major type that cannot carry one).
var ErrMalformed = errors.New("cursor: malformed CBOR")

// Major type values per RFC 8949 section 3.
const (
	MajorUint  byte = 0
	MajorNeg   byte = 1
	MajorBytes byte = 2
	MajorText  byte = 3
	MajorArray byte = 4
	MajorMap   byte = 5
	MajorTag   byte = 6
	Major7     byte = 7 // floats, simple values, break
)

const breakByte = 0xff

// Head is the decoded initial bytes of one CBOR item: its major type and
// argument (length, element count, tag number, or literal small value),
// plus whether it is an indefinite-length container/string opener.
type Head struct {
	Major      byte
	Arg        uint64
	Indefinite bool
	Size       int // number of bytes the head itself occupied
}

// DecodeHead parses the initial bytes of a CBOR item without consuming any
// payload that follows it.
func DecodeHead(b []byte) (Head, error) {
	if len(b) == 0 {
		return Head{}, ErrMalformed
	}
	major := b[0] >> 5
	info := b[0] & 0x1f
	switch {
	case info < 24:
		return Head{Major: major, Arg: uint64(info), Size: 1}, nil
	case info == 24:
		if len(b) < 2 {
			return Head{}, ErrMalformed
		}
		return Head{Major: major, Arg: uint64(b[1]), Size: 2}, nil
	case info == 25:
		if len(b) < 3 {
			return Head{}, ErrMalformed
		}
		return Head{Major: major, Arg: uint64(binary.BigEndian.Uint16(b[1:3])), Size: 3}, nil
	case info == 26:
		if len(b) < 5 {
			return Head{}, ErrMalformed
		}
		return Head{Major: major, Arg: uint64(binary.BigEndian.Uint32(b[1:5])), Size: 5}, nil
	case info == 27:
		if len(b) < 9 {
			return Head{}, ErrMalformed
		}
		return Head{Major: major, Arg: binary.BigEndian.Uint64(b[1:9]), Size: 9}, nil
	case info == 31:
		// Indefinite length is only meaningful for byte/text strings, arrays
		// and maps, and as the "break" stop code under major type 7.
		if major == MajorUint || major == MajorNeg || major == MajorTag {
			return Head{}, ErrMalformed
		}
		return Head{Major: major, Indefinite: true, Size: 1}, nil
	default: // 28, 29, 30 are reserved
		return Head{}, ErrMalformed
	}
}

// EncodeHead appends the CBOR head for major type and argument arg to dst,
// choosing the shortest encoding, and returns the extended slice. It never
// produces an indefinite-length head; this package's writers only ever need
// definite lengths.
func EncodeHead(dst []byte, major byte, arg uint64) []byte {
	switch {
	case arg < 24:
		return append(dst, major<<5|byte(arg))
	case arg <= 0xff:
		return append(dst, major<<5|24, byte(arg))
	case arg <= 0xffff:
		return append(dst, major<<5|25, byte(arg>>8), byte(arg))
	case arg <= 0xffffffff:
		return append(dst, major<<5|26,
			byte(arg>>24), byte(arg>>16), byte(arg>>8), byte(arg))
	default:
		return append(dst, major<<5|27,
			byte(arg>>56), byte(arg>>48), byte(arg>>40), byte(arg>>32),
			byte(arg>>24), byte(arg>>16), byte(arg>>8), byte(arg))
	}
}

// Cursor walks a byte slice item by item, borrowing from it throughout.
type Cursor struct {
	buf []byte
	pos int
}

// New returns a Cursor positioned at the start of buf. buf is borrowed, not
// copied, for the lifetime of the Cursor.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current byte offset into the underlying buffer.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Done reports whether the cursor has reached the end of the buffer.
func (c *Cursor) Done() bool { return c.pos >= len(c.buf) }

// ReadHead decodes and consumes the head of the item at the current
// position, advancing past it.
func (c *Cursor) ReadHead() (Head, error) {
	h, err := DecodeHead(c.buf[c.pos:])
	if err != nil {
		return Head{}, err
	}
	c.pos += h.Size
	return h, nil
}

// PeekIsBreak reports whether the next byte is the indefinite-length break
// stop code, without consuming it.
func (c *Cursor) PeekIsBreak() bool {
	return c.pos < len(c.buf) && c.buf[c.pos] == breakByte
}

// ConsumeBreak consumes a break stop code at the current position.
func (c *Cursor) ConsumeBreak() error {
	if !c.PeekIsBreak() {
		return ErrMalformed
	}
	c.pos++
	return nil
}

// ReadFullBytes reads the payload of a definite-length byte or text string
// head already consumed by ReadHead, returning a slice that borrows from the
// underlying buffer. It refuses indefinite-length (chunked) strings: this
// package never allocates to coalesce chunks.
func (c *Cursor) ReadFullBytes(h Head) ([]byte, error) {
	if h.Major != MajorBytes && h.Major != MajorText {
		return nil, ErrMalformed
	}
	if h.Indefinite {
		return nil, ErrMalformed
	}
	if h.Arg > uint64(len(c.buf)-c.pos) {
		return nil, ErrMalformed
	}
	n := int(h.Arg)
	out := c.buf[c.pos : c.pos+n]
	c.pos += n
	return out, nil
}

// ReadInt decodes a head already consumed by ReadHead as a signed integer
// (major type 0 or 1). It rejects magnitudes that do not fit in an int64.
func ReadInt(h Head) (int64, error) {
	switch h.Major {
	case MajorUint:
		if h.Arg > math.MaxInt64 {
			return 0, ErrMalformed
		}
		return int64(h.Arg), nil
	case MajorNeg:
		if h.Arg > math.MaxInt64 {
			return 0, ErrMalformed
		}
		return -1 - int64(h.Arg), nil
	default:
		return 0, ErrMalformed
	}
}

// SkipOne consumes one entire CBOR value at the current position, of
// whatever type and nesting it turns out to be. This is the "consume"
// helper the header parser uses to step over values it does not otherwise
// care about.
func (c *Cursor) SkipOne() error {
	h, err := c.ReadHead()
	if err != nil {
		return err
	}
	return c.skipBody(h)
}

func (c *Cursor) skipBody(h Head) error {
	switch h.Major {
	case MajorUint, MajorNeg, Major7:
		// Fully described by the head; no payload to skip. (Major7 covers
		// simple values and floats, which carry their value in Arg/Size.)
		return nil
	case MajorBytes, MajorText:
		if !h.Indefinite {
			if h.Arg > uint64(len(c.buf)-c.pos) {
				return ErrMalformed
			}
			c.pos += int(h.Arg)
			return nil
		}
		// Indefinite chunked string: a sequence of definite-length chunks of
		// the same major type, terminated by a break.
		for {
			if c.PeekIsBreak() {
				return c.ConsumeBreak()
			}
			ch, err := c.ReadHead()
			if err != nil {
				return err
			}
			if ch.Major != h.Major || ch.Indefinite {
				return ErrMalformed
			}
			if ch.Arg > uint64(len(c.buf)-c.pos) {
				return ErrMalformed
			}
			c.pos += int(ch.Arg)
		}
	case MajorArray:
		return c.skipItems(h, 1)
	case MajorMap:
		return c.skipItems(h, 2)
	case MajorTag:
		// A tag wraps exactly one further item.
		return c.SkipOne()
	default:
		return ErrMalformed
	}
}

// skipItems skips count*multiplier child items following an array (multiplier
// 1) or map (multiplier 2) head, honoring definite or indefinite length.
func (c *Cursor) skipItems(h Head, multiplier uint64) error {
	if !h.Indefinite {
		n := h.Arg * multiplier
		for i := uint64(0); i < n; i++ {
			if err := c.SkipOne(); err != nil {
				return err
			}
		}
		return nil
	}
	for {
		if c.PeekIsBreak() {
			return c.ConsumeBreak()
		}
		for i := uint64(0); i < multiplier; i++ {
			if err := c.SkipOne(); err != nil {
				return err
			}
		}
	}
}
