package crypto

import (
	"errors"
	"fmt"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// ErrKeyNotFound is returned by CrackXORRepeat when no keysize produced a
// decryption that looks like text.
var ErrKeyNotFound = errors.New("no repeating key candidate decodes to text")

// TextDecodeError is returned when the best scoring decryption is not valid
// UTF-8 text.
type TextDecodeError struct {
	Text []byte
}

func (e *TextDecodeError) Error() string {
	return fmt.Sprintf("decrypted text is not valid UTF-8: %q", e.Text)
}

// Candidate is a possible key together with its score and the text it
// decrypts to.
type Candidate struct {
	KeySize int
	Key     []byte
	Score   float64
	Text    []byte

	// err is the first column failure seen while cracking this keysize.
	// It is only reported if the candidate wins.
	err error
}

func printable(b byte) bool {
	switch {
	case b == '\t', b == '\n', b == '\r':
		return true
	case b < 32, b >= 127:
		return false
	}
	return true
}

// Printable reports whether every byte of x could appear in readable ASCII
// text: printable characters plus tab, newline and carriage return.
func Printable(x []byte) bool {
	for _, b := range x {
		if !printable(b) {
			return false
		}
	}
	return true
}

// CrackXORByte recovers the single byte key that ct was XORed with. Every
// key is tried in ascending order; keys that yield non-printable bytes are
// skipped and the rest are scored with Score. On equal scores the lower key
// wins.
//
// If no key yields printable text with a positive score, CrackXORByte
// returns a zero key, zero score and nil text.
func CrackXORByte(ct []byte) (key byte, score float64, pt []byte, err error) {
	var (
		buf   []byte
		freqs []float64
		found bool
	)
	for k := 0; k < 256; k++ {
		buf = XORByte(buf, ct, byte(k))
		if !Printable(buf) {
			continue
		}
		freqs = LetterFrequency(freqs, buf)
		if s := Score(freqs); s > score {
			key, score, found = byte(k), s, true
		}
	}
	if !found {
		return 0, 0, nil, nil
	}

	pt = XORByte(nil, ct, key)
	if !utf8.Valid(pt) {
		return 0, 0, nil, &TextDecodeError{Text: pt}
	}
	return key, score, pt, nil
}

// DetectXORByte finds the ciphertext in cts most likely to be English
// encrypted with a single byte XOR. It returns the index of that ciphertext
// and the cracked candidate. ok is false if no ciphertext decrypted to
// scoring text.
func DetectXORByte(cts [][]byte) (index int, best Candidate, ok bool) {
	index = -1
	for i, ct := range cts {
		key, score, pt, err := CrackXORByte(ct)
		if err != nil {
			log.Debugf("Skipping ciphertext %d: %v", i, err)
			continue
		}
		if score > best.Score {
			index = i
			best = Candidate{KeySize: 1, Key: []byte{key}, Score: score, Text: pt}
		}
	}
	return index, best, index >= 0
}

// Transpose splits ct into keySize columns. Column i holds the bytes at
// positions i, i+keySize, i+2*keySize and so on, which are all XORed with
// the same key byte under a repeating key of that length.
func Transpose(ct []byte, keySize int) [][]byte {
	cols := make([][]byte, keySize)
	for i := range cols {
		cols[i] = make([]byte, 0, len(ct)/keySize+1)
	}
	for i, b := range ct {
		cols[i%keySize] = append(cols[i%keySize], b)
	}
	return cols
}

func crackKeySize(ct []byte, keySize int) Candidate {
	c := Candidate{KeySize: keySize, Key: make([]byte, keySize)}
	for i, col := range Transpose(ct, keySize) {
		k, score, _, err := CrackXORByte(col)
		if err != nil && c.err == nil {
			c.err = fmt.Errorf("column %d of keysize %d: %w", i, keySize, err)
		}
		c.Key[i] = k
		c.Score += score
	}
	return c
}

// CrackXORRepeat recovers a repeating XOR key and the plaintext of ct. The
// three most likely keysizes from RankKeySizes are each cracked one column
// at a time with CrackXORByte. The key whose column scores sum highest is
// used to decrypt ct.
func CrackXORRepeat(ct []byte, minKeySize, maxKeySize int) (key, pt []byte, err error) {
	sizes, err := RankKeySizes(ct, minKeySize, maxKeySize)
	if err != nil {
		return nil, nil, err
	}
	if len(sizes) > keySizeCandidates {
		sizes = sizes[:keySizeCandidates]
	}
	log.Tracef("Keysize candidates: %v", spewClosure(sizes))

	// Each goroutine writes only its own slot, and the winner is chosen
	// in rank order afterwards so the result does not depend on scheduling.
	cands := make([]Candidate, len(sizes))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, ks := range sizes {
		i, ks := i, ks
		g.Go(func() error {
			cands[i] = crackKeySize(ct, ks.Size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	best := -1
	bestScore := 0.
	for i := range cands {
		log.Debugf("Keysize %d: key=%q score=%.4f", cands[i].KeySize,
			cands[i].Key, cands[i].Score)
		if cands[i].Score > bestScore {
			best, bestScore = i, cands[i].Score
		}
	}
	if best < 0 {
		return nil, nil, ErrKeyNotFound
	}
	if cands[best].err != nil {
		return nil, nil, cands[best].err
	}

	key = cands[best].Key
	pt = XORRepeat(nil, ct, key)
	if !utf8.Valid(pt) {
		return nil, nil, &TextDecodeError{Text: pt}
	}
	return key, pt, nil
}
