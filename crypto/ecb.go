package crypto

import (
	"crypto/cipher"
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ECBBlockSize is the block size DetectECB looks for repeats at.
const ECBBlockSize = 16

type ecbCrypter struct {
	blockSize int
	crypt     func(dst, src []byte)
}

func NewECBEncrypter(c cipher.Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Encrypt,
	}
}

func NewECBDecrypter(c cipher.Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Decrypt,
	}
}

func (cr *ecbCrypter) BlockSize() int {
	return cr.blockSize
}

func (cr *ecbCrypter) CryptBlocks(dst, src []byte) {
	checkBlocks(dst, src, cr.blockSize)
	for i := 0; i < len(src); i += cr.blockSize {
		cr.crypt(dst[i:i+cr.blockSize], src[i:i+cr.blockSize])
	}
}

// checkBlocks panics unless src is a whole number of blocks and dst can
// hold it, matching the contract of cipher.BlockMode.
func checkBlocks(dst, src []byte, bs int) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	if len(src)%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", len(src), bs))
	}
}

// DetectECB reports whether ct contains two identical 16-byte blocks. Under
// ECB, equal plaintext blocks encrypt to equal ciphertext blocks, which
// essentially never happens by chance in other modes. Ciphertexts that are
// not a whole number of blocks are never flagged.
func DetectECB(ct []byte) bool {
	if len(ct)%ECBBlockSize != 0 {
		return false
	}
	seen := make(map[string]struct{}, len(ct)/ECBBlockSize)
	s := string(ct)
	for i := 0; i < len(s); i += ECBBlockSize {
		b := s[i : i+ECBBlockSize]
		if _, ok := seen[b]; ok {
			return true
		}
		seen[b] = struct{}{}
	}
	return false
}

// FindECB returns the index of the first ciphertext in cts that DetectECB
// flags. Ciphertexts after the match are not examined.
func FindECB(cts [][]byte) fn.Option[int] {
	for i, ct := range cts {
		if DetectECB(ct) {
			log.Debugf("Ciphertext %d has repeated blocks", i)
			return fn.Some(i)
		}
	}
	return fn.None[int]()
}
