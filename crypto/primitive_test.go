package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"jayconrod.com/cryptokit/crypto"
)

func TestLookupPrimitive(t *testing.T) {
	require.Equal(t, []string{"aes", "twofish"}, crypto.PrimitiveNames())

	for _, name := range crypto.PrimitiveNames() {
		p, err := crypto.LookupPrimitive(name)
		require.NoError(t, err)

		b, err := p([]byte("YELLOW SUBMARINE"))
		require.NoError(t, err)
		require.Equal(t, 16, b.BlockSize())

		_, err = p([]byte("too short"))
		require.Error(t, err)
	}

	_, err := crypto.LookupPrimitive("rot13")
	require.Error(t, err)
}
