package crypto_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"jayconrod.com/cryptokit/crypto"
)

func TestPad(t *testing.T) {
	got := crypto.Pad(nil, []byte("YELLOW SUBMARINE"), 20)
	require.Equal(t, []byte("YELLOW SUBMARINE\x04\x04\x04\x04"), got)

	// Aligned input gets no padding block.
	got = crypto.Pad(nil, []byte("YELLOW SUBMARINE"), 16)
	require.Equal(t, []byte("YELLOW SUBMARINE"), got)

	got = crypto.Pad([]byte("prefix:"), []byte("abc"), 4)
	require.Equal(t, []byte("prefix:abc\x01"), got)

	require.Equal(t, 32, crypto.PadLength(17, 16))
	require.Equal(t, 16, crypto.PadLength(16, 16))
	require.Equal(t, 0, crypto.PadLength(0, 16))

	require.Panics(t, func() { crypto.Pad(nil, nil, 0) })
	require.Panics(t, func() { crypto.Pad(nil, nil, 256) })
}

func TestUnpad(t *testing.T) {
	for _, test := range []struct {
		text string
		want string
		ok   bool
	}{
		{"", "", false},
		{"ICE ICE BABY\x04\x04\x04\x04", "ICE ICE BABY", true},
		{"ICE ICE BABY\x05\x05\x05\x05", "ICE ICE BABY\x05\x05\x05\x05", false},
		{"ICE ICE BABY\x01\x02\x03\x04", "ICE ICE BABY\x01\x02\x03\x04", false},
		{"\x03\x03\x03", "\x03\x03\x03", false},
		{"YELLOW SUBMARINE", "YELLOW SUBMARINE", false},
		{"0123456789abcde\x10", "0123456789abcde\x10", false},
	} {
		buf := []byte(test.text)
		require.Equal(t, test.want, string(crypto.Unpad(buf, 16)), "Unpad(%q)", test.text)

		got, err := crypto.CheckedUnpad(buf, 16)
		if test.ok {
			require.NoError(t, err, "CheckedUnpad(%q)", test.text)
			require.Equal(t, test.want, string(got))
		} else {
			require.ErrorIs(t, err, crypto.ErrInvalidPadding, "CheckedUnpad(%q)", test.text)
		}
	}
}

func TestUnpadAlignedAmbiguity(t *testing.T) {
	// Aligned messages carry no padding, so one that happens to end in
	// something that looks like padding loses those bytes.
	msg := []byte("fifteen bytes!\x01\x01")
	padded := crypto.Pad(nil, msg, 16)
	require.Equal(t, msg, padded)
	require.Equal(t, msg[:15], crypto.Unpad(padded, 16))
}

func TestPadEmpty(t *testing.T) {
	got := crypto.Pad(nil, nil, 16)
	require.NotNil(t, got)
	require.Equal(t, []byte{}, got)
	require.Equal(t, []byte{}, crypto.Unpad(got, 16))

	got = crypto.Pad(nil, []byte{}, 1)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestPadRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for blockSize := 1; blockSize <= 32; blockSize++ {
		for n := 0; n <= 3*blockSize; n++ {
			// Lowercase letters are never valid padding bytes for these
			// block sizes.
			data := make([]byte, n)
			for i := range data {
				data[i] = byte('a' + r.Intn(26))
			}
			padded := crypto.Pad(nil, data, blockSize)
			require.Zero(t, len(padded)%blockSize)
			require.Equal(t, data, crypto.Unpad(padded, blockSize))
		}
	}
}
