package main

import (
	"bytes"
	"crypto/aes"
	"crypto/rand"
	"path/filepath"
	"testing"

	"jayconrod.com/cryptokit/crypto"
)

// Implement PKCS#7 padding.
func TestSet2Problem9(t *testing.T) {
	t.Parallel()
	src := []byte("YELLOW SUBMARINE")
	dst := crypto.Pad(nil, src, 20)
	want := []byte("YELLOW SUBMARINE\x04\x04\x04\x04")
	if !bytes.Equal(dst, want) {
		t.Errorf("got %q; want %q", dst, want)
	}
}

// Implement CBC mode.
func TestSet2Problem10(t *testing.T) {
	t.Parallel()
	ct := readBase64File(t, filepath.FromSlash("testdata/s2/p10.txt"))
	key := []byte("YELLOW SUBMARINE")
	iv := make([]byte, 16)
	pt, err := crypto.NewCBC(crypto.AES).Decrypt(key, iv, ct)
	if err != nil {
		t.Fatal(err)
	}

	want := readFile(t, filepath.FromSlash("testdata/s2/p10want.txt"))
	if !bytes.Equal(pt, want) {
		t.Errorf("got:\n%s\nwant:\n%s", pt, want)
	}

	// Encrypting the plaintext again reproduces the ciphertext.
	ct2, err := crypto.NewCBC(crypto.AES).Encrypt(key, iv, want)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ct2, ct) {
		t.Errorf("re-encryption does not match ciphertext")
	}
}

// ECB/CBC detection oracle.
func TestSet2Problem11(t *testing.T) {
	t.Parallel()

	type mode int
	const (
		ECB mode = 0
		CBC mode = 1
	)
	encryptOracle := func(pt []byte) ([]byte, mode) {
		r := make([]byte, 33)
		if _, err := rand.Read(r); err != nil {
			t.Fatal(err)
		}
		key := r[:16]
		iv := r[16:32]
		config := int(r[32])
		mode := mode(config & 1)
		headJunkLen := (((config >> 1) & 7) % 6) + 5
		tailJunkLen := (((config >> 4) & 7) % 6) + 5
		junk := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
		msg := make([]byte, 0, headJunkLen+len(pt)+tailJunkLen)
		msg = append(msg, junk[:headJunkLen]...)
		msg = append(msg, pt...)
		msg = append(msg, junk[:tailJunkLen]...)

		if mode == CBC {
			ct, err := crypto.NewCBC(crypto.AES).Encrypt(key, iv, msg)
			if err != nil {
				t.Fatal(err)
			}
			return ct, mode
		}
		c, err := aes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		ct := crypto.Pad(nil, msg, c.BlockSize())
		crypto.NewECBEncrypter(c).CryptBlocks(ct, ct)
		return ct, mode
	}

	for i := 0; i < 10; i++ {
		pt := make([]byte, 64) // at least four blocks ensure repetition in ECB
		ct, want := encryptOracle(pt)
		isECB := crypto.DetectECB(ct)
		if (want == ECB) != isECB {
			t.Errorf("iteration %d: did not detect correct mode: got ECB %t, want ECB %t", i, isECB, want == ECB)
		}
	}
}

// PKCS#7 padding validation.
func TestSet2Problem15(t *testing.T) {
	for _, test := range []struct {
		text string
		ok   bool
	}{
		{"", false},
		{"ICE ICE BABY\x04\x04\x04\x04", true},
		{"ICE ICE BABY\x05\x05\x05\x05", false},
		{"ICE ICE BABY\x01\x02\x03\x04", false},
	} {
		buf := []byte(test.text)
		_, err := crypto.CheckedUnpad(buf, 16)
		if err == nil && !test.ok {
			t.Errorf("unexpected success: %q", test.text)
		} else if err != nil && test.ok {
			t.Errorf("unexpected failure on %q: %v", test.text, err)
		}
	}
}
