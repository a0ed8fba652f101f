package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHead_SmallValues(t *testing.T) {
	h, err := DecodeHead([]byte{0x05})
	require.NoError(t, err)
	assert.Equal(t, Head{Major: MajorUint, Arg: 5, Size: 1}, h)
}

func TestDecodeHead_OneByteFollowOn(t *testing.T) {
	h, err := DecodeHead([]byte{0x18, 0xff})
	require.NoError(t, err)
	assert.Equal(t, Head{Major: MajorUint, Arg: 255, Size: 2}, h)
}

func TestDecodeHead_TwoByteFollowOn(t *testing.T) {
	h, err := DecodeHead([]byte{0x19, 0x01, 0x00})
	require.NoError(t, err)
	assert.Equal(t, Head{Major: MajorUint, Arg: 256, Size: 3}, h)
}

func TestDecodeHead_EightByteFollowOn(t *testing.T) {
	h, err := DecodeHead([]byte{0x1b, 0, 0, 0, 0, 0, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, Head{Major: MajorUint, Arg: 256, Size: 9}, h)
}

func TestDecodeHead_Truncated(t *testing.T) {
	_, err := DecodeHead([]byte{0x19, 0x01})
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeHead_Empty(t *testing.T) {
	_, err := DecodeHead(nil)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeHead_IndefiniteDisallowedOnIntsAndTags(t *testing.T) {
	for _, major := range []byte{MajorUint, MajorNeg, MajorTag} {
		_, err := DecodeHead([]byte{major<<5 | 31})
		assert.ErrorIsf(t, err, ErrMalformed, "major %d", major)
	}
}

func TestDecodeHead_IndefiniteAllowedOnStringsArraysMaps(t *testing.T) {
	for _, major := range []byte{MajorBytes, MajorText, MajorArray, MajorMap} {
		h, err := DecodeHead([]byte{major<<5 | 31})
		require.NoError(t, err)
		assert.True(t, h.Indefinite)
	}
}

func TestDecodeHead_ReservedAdditionalInfo(t *testing.T) {
	for _, info := range []byte{28, 29, 30} {
		_, err := DecodeHead([]byte{0x00 | info})
		assert.ErrorIs(t, err, ErrMalformed)
	}
}

func TestEncodeHead_RoundTrip(t *testing.T) {
	for _, arg := range []uint64{0, 23, 24, 255, 256, 65535, 65536, 1 << 32, 1 << 40} {
		b := EncodeHead(nil, MajorBytes, arg)
		h, err := DecodeHead(b)
		require.NoErrorf(t, err, "arg=%d", arg)
		assert.Equal(t, arg, h.Arg)
		assert.Equal(t, len(b), h.Size)
	}
}

func TestCursor_ReadFullBytes(t *testing.T) {
	buf := []byte{0x43, 0x01, 0x02, 0x03}
	c := New(buf)
	h, err := c.ReadHead()
	require.NoError(t, err)
	v, err := c.ReadFullBytes(h)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, v)
	assert.True(t, c.Done())
}

func TestCursor_ReadFullBytes_IndefiniteRejected(t *testing.T) {
	c := New([]byte{0x5f, 0xff})
	h, err := c.ReadHead()
	require.NoError(t, err)
	_, err = c.ReadFullBytes(h)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReadInt(t *testing.T) {
	h, _ := DecodeHead([]byte{0x05})
	v, err := ReadInt(h)
	require.NoError(t, err)
	assert.EqualValues(t, 5, v)

	h, _ = DecodeHead([]byte{0x26}) // -7
	v, err = ReadInt(h)
	require.NoError(t, err)
	assert.EqualValues(t, -7, v)
}

func TestCursor_SkipOne_NestedArray(t *testing.T) {
	// [1, [2, 3], "x"] followed by a trailing 0x00.
	buf := []byte{
		0x83,
		0x01,
		0x82, 0x02, 0x03,
		0x61, 0x78,
		0x00,
	}
	c := New(buf)
	require.NoError(t, c.SkipOne())
	assert.Equal(t, len(buf)-1, c.Pos())
}

func TestCursor_SkipOne_IndefiniteMap(t *testing.T) {
	// {_ 1: 2} then a trailing byte.
	buf := []byte{0xbf, 0x01, 0x02, 0xff, 0x00}
	c := New(buf)
	require.NoError(t, c.SkipOne())
	assert.Equal(t, len(buf)-1, c.Pos())
}

func TestCursor_SkipOne_IndefiniteChunkedBytes(t *testing.T) {
	buf := []byte{0x5f, 0x41, 0x01, 0x41, 0x02, 0xff, 0x00}
	c := New(buf)
	require.NoError(t, c.SkipOne())
	assert.Equal(t, len(buf)-1, c.Pos())
}

func TestCursor_SkipOne_Tag(t *testing.T) {
	buf := []byte{0xc1, 0x01} // tag(1) wrapping uint 1
	c := New(buf)
	require.NoError(t, c.SkipOne())
	assert.True(t, c.Done())
}

func TestCursor_PeekAndConsumeBreak(t *testing.T) {
	c := New([]byte{0xff})
	assert.True(t, c.PeekIsBreak())
	require.NoError(t, c.ConsumeBreak())
	assert.True(t, c.Done())
}
