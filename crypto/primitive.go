package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"sort"

	"golang.org/x/crypto/twofish"
)

// Primitive creates a single-block cipher keyed with key. It returns an
// error if the key has a length the cipher does not support.
type Primitive func(key []byte) (cipher.Block, error)

// AES is the AES block cipher; keys must be 16, 24 or 32 bytes.
func AES(key []byte) (cipher.Block, error) {
	return aes.NewCipher(key)
}

// Twofish is the Twofish block cipher; keys must be 16, 24 or 32 bytes.
func Twofish(key []byte) (cipher.Block, error) {
	c, err := twofish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}

var primitives = map[string]Primitive{
	"aes":     AES,
	"twofish": Twofish,
}

// PrimitiveNames lists the names LookupPrimitive accepts.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func LookupPrimitive(name string) (Primitive, error) {
	p, ok := primitives[name]
	if !ok {
		return nil, fmt.Errorf("unknown cipher %q, want one of %v", name, PrimitiveNames())
	}
	return p, nil
}
