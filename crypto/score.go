package crypto

import "math"

// englishFreqs holds the relative frequency of each letter 'a'..'z' in
// reference English text.
var englishFreqs = [26]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015,
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749,
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758,
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074,
}

// EnglishFreq returns the reference frequency of c, which is zero for
// anything but a lowercase ASCII letter.
func EnglishFreq(c byte) float64 {
	if c < 'a' || c > 'z' {
		return 0
	}
	return englishFreqs[c-'a']
}

// LetterFrequency fills freqs with the relative frequency of every byte
// value in x, counting ASCII letters as their lowercase form. freqs is
// reused if it has room for 256 entries.
func LetterFrequency(freqs []float64, x []byte) []float64 {
	if cap(freqs) < 256 {
		freqs = make([]float64, 256)
	} else {
		freqs = freqs[:256]
		for i := range freqs {
			freqs[i] = 0
		}
	}
	if len(x) == 0 {
		return freqs
	}
	inc := 1 / float64(len(x))
	for _, b := range x {
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		freqs[b] += inc
	}
	return freqs
}

// Score rates how closely freqs, as returned by LetterFrequency, matches
// English letter usage. Each letter contributes sqrt(reference * observed),
// so text that spreads across many common letters beats text that repeats
// one. The result is never negative.
func Score(freqs []float64) float64 {
	score := 0.
	for i, ref := range englishFreqs {
		c := 'a' + i
		if c >= len(freqs) {
			break
		}
		score += math.Sqrt(ref * freqs[c])
	}
	return score
}
