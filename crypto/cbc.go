package crypto

import (
	"crypto/cipher"
	"errors"
	"fmt"
)

// ErrCiphertextLength is returned when a CBC ciphertext is not a whole
// number of blocks.
var ErrCiphertextLength = errors.New("ciphertext not a multiple of block size")

// PrimitiveError reports a failure to set up the single-block cipher: a key
// the primitive rejects or an IV of the wrong length.
type PrimitiveError struct {
	Op  string
	Err error
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PrimitiveError) Unwrap() error {
	return e.Err
}

type cbcEncrypter struct {
	c    cipher.Block
	prev []byte
	tmp  []byte
}

// NewCBCEncrypter returns a BlockMode that encrypts in cipher block chaining
// mode using c. Each plaintext block is XORed with the previous ciphertext
// block, or iv for the first, before being encrypted. iv is copied.
func NewCBCEncrypter(c cipher.Block, iv []byte) cipher.BlockMode {
	checkIV(c, iv)
	return &cbcEncrypter{
		c:    c,
		prev: append([]byte(nil), iv...),
		tmp:  make([]byte, c.BlockSize()),
	}
}

func (cr *cbcEncrypter) BlockSize() int {
	return cr.c.BlockSize()
}

func (cr *cbcEncrypter) CryptBlocks(dst, src []byte) {
	bs := cr.c.BlockSize()
	checkBlocks(dst, src, bs)
	for i := 0; i < len(src); i += bs {
		XOR(cr.tmp, src[i:i+bs], cr.prev)
		cr.c.Encrypt(dst[i:i+bs], cr.tmp)
		copy(cr.prev, dst[i:i+bs])
	}
}

type cbcDecrypter struct {
	c    cipher.Block
	prev []byte
	next []byte
	tmp  []byte
}

// NewCBCDecrypter returns a BlockMode that decrypts in cipher block chaining
// mode using c. src and dst may overlap entirely.
func NewCBCDecrypter(c cipher.Block, iv []byte) cipher.BlockMode {
	checkIV(c, iv)
	bs := c.BlockSize()
	return &cbcDecrypter{
		c:    c,
		prev: append([]byte(nil), iv...),
		next: make([]byte, bs),
		tmp:  make([]byte, bs),
	}
}

func (cr *cbcDecrypter) BlockSize() int {
	return cr.c.BlockSize()
}

func (cr *cbcDecrypter) CryptBlocks(dst, src []byte) {
	bs := cr.c.BlockSize()
	checkBlocks(dst, src, bs)
	for i := 0; i < len(src); i += bs {
		// Save the ciphertext block before dst overwrites it; it chains
		// into the next block, not the decrypted bytes.
		copy(cr.next, src[i:i+bs])
		cr.c.Decrypt(cr.tmp, cr.next)
		XOR(dst[i:i+bs], cr.tmp, cr.prev)
		cr.prev, cr.next = cr.next, cr.prev
	}
}

func checkIV(c cipher.Block, iv []byte) {
	if len(iv) != c.BlockSize() {
		panic(fmt.Sprintf("iv length is not block size: len(iv) = %d, block size = %d", len(iv), c.BlockSize()))
	}
}

// CBC encrypts and decrypts whole messages in cipher block chaining mode on
// top of a single-block Primitive, handling padding itself. A CBC holds no
// chaining state between calls and is safe for concurrent use.
type CBC struct {
	newBlock Primitive
}

func NewCBC(p Primitive) *CBC {
	return &CBC{newBlock: p}
}

func (c *CBC) block(key, iv []byte) (cipher.Block, error) {
	b, err := c.newBlock(key)
	if err != nil {
		return nil, &PrimitiveError{Op: "key", Err: err}
	}
	if len(iv) != b.BlockSize() {
		return nil, &PrimitiveError{
			Op:  "iv",
			Err: fmt.Errorf("length %d, want %d", len(iv), b.BlockSize()),
		}
	}
	return b, nil
}

// Encrypt pads pt to the block size and encrypts it with key and iv.
func (c *CBC) Encrypt(key, iv, pt []byte) ([]byte, error) {
	b, err := c.block(key, iv)
	if err != nil {
		return nil, err
	}
	buf := Pad(nil, pt, b.BlockSize())
	NewCBCEncrypter(b, iv).CryptBlocks(buf, buf)
	return buf, nil
}

// Decrypt decrypts ct with key and iv and strips padding with Unpad, so a
// final block without valid padding is returned as is.
func (c *CBC) Decrypt(key, iv, ct []byte) ([]byte, error) {
	b, buf, err := c.decrypt(key, iv, ct)
	if err != nil {
		return nil, err
	}
	return Unpad(buf, b.BlockSize()), nil
}

// DecryptChecked is like Decrypt but fails with ErrInvalidPadding if the
// decrypted message does not end in valid padding. Encrypt adds no padding to
// aligned messages, so their ciphertexts are always rejected here.
func (c *CBC) DecryptChecked(key, iv, ct []byte) ([]byte, error) {
	b, buf, err := c.decrypt(key, iv, ct)
	if err != nil {
		return nil, err
	}
	return CheckedUnpad(buf, b.BlockSize())
}

func (c *CBC) decrypt(key, iv, ct []byte) (cipher.Block, []byte, error) {
	b, err := c.block(key, iv)
	if err != nil {
		return nil, nil, err
	}
	if len(ct)%b.BlockSize() != 0 {
		return nil, nil, fmt.Errorf("%w: len(ct) = %d, block size = %d",
			ErrCiphertextLength, len(ct), b.BlockSize())
	}
	buf := make([]byte, len(ct))
	NewCBCDecrypter(b, iv).CryptBlocks(buf, ct)
	return b, buf, nil
}
