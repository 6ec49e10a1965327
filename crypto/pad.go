package crypto

import (
	"errors"
	"fmt"
)

// ErrInvalidPadding is returned by CheckedUnpad when a buffer does not end
// in valid padding.
var ErrInvalidPadding = errors.New("invalid padding")

func checkPadBlockSize(blockSize int) {
	if blockSize <= 0 || blockSize > 255 {
		panic(fmt.Sprintf("block size %d out of range [1, 255]", blockSize))
	}
}

// PadLength returns the length of an n-byte message after Pad.
func PadLength(n, blockSize int) int {
	checkPadBlockSize(blockSize)
	if r := n % blockSize; r != 0 {
		return n + blockSize - r
	}
	return n
}

// Pad appends src to dst, followed by PKCS#7 style padding up to the next
// multiple of blockSize: p bytes each of value p. Nothing is added when src
// is already a multiple of blockSize. The result is never nil.
func Pad(dst, src []byte, blockSize int) []byte {
	n := PadLength(len(src), blockSize)
	if dst == nil {
		dst = make([]byte, 0, n)
	}
	dst = append(dst, src...)
	p := byte(n - len(src))
	for i := len(src); i < n; i++ {
		dst = append(dst, p)
	}
	return dst
}

// stripPadding returns buf without its padding, or false if buf does not
// end in padding. The last byte p is the claimed padding length; it must
// be less than blockSize, buf must be longer than p, and the last p bytes
// must all equal p.
func stripPadding(buf []byte, blockSize int) ([]byte, bool) {
	if len(buf) == 0 {
		return buf, false
	}
	p := int(buf[len(buf)-1])
	if p >= blockSize || len(buf) <= p {
		return buf, false
	}
	for _, b := range buf[len(buf)-p:] {
		if int(b) != p {
			return buf, false
		}
	}
	return buf[:len(buf)-p], true
}

// Unpad removes padding added by Pad. If buf does not end in valid padding
// it is returned unchanged without error, because aligned messages carry no
// padding at all. Use CheckedUnpad to detect malformed padding.
func Unpad(buf []byte, blockSize int) []byte {
	checkPadBlockSize(blockSize)
	buf, _ = stripPadding(buf, blockSize)
	return buf
}

// CheckedUnpad is like Unpad but returns ErrInvalidPadding instead of
// passing malformed input through.
func CheckedUnpad(buf []byte, blockSize int) ([]byte, error) {
	checkPadBlockSize(blockSize)
	out, ok := stripPadding(buf, blockSize)
	if !ok {
		return nil, ErrInvalidPadding
	}
	return out, nil
}
