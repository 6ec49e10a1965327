package crypto

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// MinKeySize and MaxKeySize bound the repeating-key lengths that
	// RankKeySizes and CrackXORRepeat will consider.
	MinKeySize = 2
	MaxKeySize = 40

	// keySizeChunks is how many leading keysize-length chunks are compared
	// when estimating a keysize.
	keySizeChunks = 4

	// keySizeCandidates is how many of the best ranked keysizes are
	// actually cracked.
	keySizeCandidates = 3
)

// ErrShortCiphertext is returned when a ciphertext is too short to hold
// two chunks of any keysize in the requested range.
var ErrShortCiphertext = errors.New("ciphertext too short to estimate keysize")

// KeySize is a candidate repeating-key length and its normalized Hamming
// distance. Lower distances are more likely to be the real key length.
type KeySize struct {
	Size int
	Dist float64
}

// RankKeySizes estimates the length of the repeating key used to encrypt
// ct. For each keysize k in [minKeySize, maxKeySize] it sums the Hamming
// distance between adjacent chunks among the first four k-byte chunks, then
// divides by k and by the number of chunk pairs. The result is sorted by
// ascending distance; equal distances keep ascending keysize order.
//
// Keysizes for which ct has fewer than two whole chunks are left out.
func RankKeySizes(ct []byte, minKeySize, maxKeySize int) ([]KeySize, error) {
	if minKeySize < MinKeySize || maxKeySize > MaxKeySize || minKeySize > maxKeySize {
		return nil, fmt.Errorf("keysize range [%d, %d] not within [%d, %d]",
			minKeySize, maxKeySize, MinKeySize, MaxKeySize)
	}

	var ranked []KeySize
	for k := minKeySize; k <= maxKeySize; k++ {
		n := len(ct) / k
		if n > keySizeChunks {
			n = keySizeChunks
		}
		if n < 2 {
			continue
		}
		dist := 0.
		for j := 0; j < n-1; j++ {
			dist += float64(HammingDistance(ct[j*k:(j+1)*k], ct[(j+1)*k:(j+2)*k]))
		}
		ranked = append(ranked, KeySize{
			Size: k,
			Dist: dist / float64(k) / float64(n-1),
		})
	}
	if len(ranked) == 0 {
		return nil, ErrShortCiphertext
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Dist < ranked[j].Dist
	})
	return ranked, nil
}
