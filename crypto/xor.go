package crypto

import (
	"fmt"
	"math/bits"
)

// grow returns buf resliced to n bytes, allocating only when buf is nil or
// its capacity is too small. The result is never nil.
func grow(buf []byte, n int) []byte {
	if buf == nil || cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

// XOR stores x ^ y in buf and returns it. x and y must have equal length.
func XOR(buf, x, y []byte) []byte {
	if len(x) != len(y) {
		panic(fmt.Sprintf("buffers have different length: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	buf = grow(buf, len(x))
	for i := range x {
		buf[i] = x[i] ^ y[i]
	}
	return buf
}

// XORByte stores x with every byte XORed with k in buf and returns it.
func XORByte(buf, x []byte, k byte) []byte {
	buf = grow(buf, len(x))
	for i, b := range x {
		buf[i] = b ^ k
	}
	return buf
}

// XORRepeat applies key cyclically over x: buf[i] = x[i] ^ key[i%len(key)].
// Applying it twice with the same key returns the original bytes.
func XORRepeat(buf, x, key []byte) []byte {
	if len(key) == 0 {
		panic("empty repeating key")
	}
	buf = grow(buf, len(x))
	for i, b := range x {
		buf[i] = b ^ key[i%len(key)]
	}
	return buf
}

// HammingDistance counts the bits that differ between x and y.
func HammingDistance(x, y []byte) int {
	if len(x) != len(y) {
		panic(fmt.Sprintf("buffers have different length: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	n := 0
	for i := range x {
		n += bits.OnesCount8(x[i] ^ y[i])
	}
	return n
}
