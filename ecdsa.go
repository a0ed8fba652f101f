package cose

import "math/big"

// errIntegerNegative and errIntegerTooLarge back I2OSP, which this package
// uses only to re-pad a signature's r and s values to the fixed width RFC
// 8152 section 8.1 requires; both values always come out of a freshly
// computed ecdsa.Sign result, so these cases aren't expected to fire in
// practice.
var (
	errIntegerNegative = errorString("I2OSP: negative integer")
	errIntegerTooLarge = errorString("I2OSP: integer too large")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// I2OSP is the Integer-to-Octet-String primitive: it converts a nonnegative
// integer to a big-endian octet string of exactly xLen bytes, padding with
// leading zeros as needed.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc8017#section-4.1
func I2OSP(x *big.Int, xLen int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, errIntegerNegative
	}
	if x.BitLen() > xLen*8 {
		return nil, errIntegerTooLarge
	}
	return x.FillBytes(make([]byte, xLen)), nil
}

// OS2IP is the Octet-String-to-Integer primitive: it converts a big-endian
// octet string to a nonnegative integer. Used to recover the r and s
// components of a COSE ECDSA signature from its fixed-width r||s encoding.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc8017#section-4.2
func OS2IP(x []byte) *big.Int {
	return new(big.Int).SetBytes(x)
}
