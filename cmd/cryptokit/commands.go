package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"
	"jayconrod.com/cryptokit/crypto"
)

var xorByteCommand = cli.Command{
	Name:      "xorbyte",
	Category:  "XOR",
	Usage:     "Recover the key of a single byte XOR ciphertext.",
	ArgsUsage: "[hex file]",
	Description: `
	Tries every byte key against the hex encoded ciphertext and prints the
	key whose decryption looks most like English text.`,
	Action: xorByte,
}

func xorByte(ctx *cli.Context) error {
	ct, err := readHex(ctx)
	if err != nil {
		return err
	}
	key, score, pt, err := crypto.CrackXORByte(ct)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "key: %#02x\nscore: %.4f\ntext: %q\n", key, score, pt)
	return nil
}

var detectXORCommand = cli.Command{
	Name:      "detectxor",
	Category:  "XOR",
	Usage:     "Find the line encrypted with single byte XOR.",
	ArgsUsage: "[hex lines file]",
	Action:    detectXOR,
}

func detectXOR(ctx *cli.Context) error {
	cts, err := readHexLines(ctx)
	if err != nil {
		return err
	}
	i, best, ok := crypto.DetectXORByte(cts)
	if !ok {
		return fmt.Errorf("no line decrypts to text")
	}
	fmt.Fprintf(ctx.App.Writer, "line: %d\nkey: %#02x\nscore: %.4f\ntext: %q\n",
		i+1, best.Key[0], best.Score, best.Text)
	return nil
}

var breakXORCommand = cli.Command{
	Name:      "breakxor",
	Category:  "XOR",
	Usage:     "Recover a repeating XOR key.",
	ArgsUsage: "[base64 file]",
	Description: `
	Estimates the key length from normalized Hamming distances, then cracks
	each key byte independently. Prints the key and the decrypted text.`,
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "minkeysize",
			Usage: "The shortest key length to consider.",
			Value: crypto.MinKeySize,
		},
		cli.IntFlag{
			Name:  "maxkeysize",
			Usage: "The longest key length to consider.",
			Value: crypto.MaxKeySize,
		},
	},
	Action: breakXOR,
}

func breakXOR(ctx *cli.Context) error {
	ct, err := readBase64(ctx)
	if err != nil {
		return err
	}
	key, pt, err := crypto.CrackXORRepeat(ct, ctx.Int("minkeysize"), ctx.Int("maxkeysize"))
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "key: %q\n\n%s", key, pt)
	return nil
}

var repeatXORCommand = cli.Command{
	Name:      "repeatxor",
	Category:  "XOR",
	Usage:     "Encrypt text with a repeating XOR key.",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "key",
			Usage: "The repeating key.",
		},
	},
	Action: repeatXOR,
}

func repeatXOR(ctx *cli.Context) error {
	key := ctx.String("key")
	if key == "" {
		return fmt.Errorf("key argument missing")
	}
	pt, err := readInput(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(crypto.XORRepeat(nil, pt, []byte(key))))
	return nil
}

var detectECBCommand = cli.Command{
	Name:      "detectecb",
	Category:  "Block modes",
	Usage:     "Find the line encrypted in ECB mode.",
	ArgsUsage: "[hex lines file]",
	Action:    detectECB,
}

func detectECB(ctx *cli.Context) error {
	cts, err := readHexLines(ctx)
	if err != nil {
		return err
	}
	i, err := crypto.FindECB(cts).UnwrapOrErr(
		fmt.Errorf("no line has repeated blocks"),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "line: %d\n%x\n", i+1, cts[i])
	return nil
}

var keyFlag = cli.StringFlag{
	Name:  "key",
	Usage: "The cipher key as text, e.g. \"YELLOW SUBMARINE\".",
}

var ivFlag = cli.StringFlag{
	Name:  "iv",
	Usage: "The hex encoded IV. Defaults to all zeroes.",
}

func primitive(ctx *cli.Context) (crypto.Primitive, []byte, error) {
	p, err := crypto.LookupPrimitive(ctx.GlobalString("cipher"))
	if err != nil {
		return nil, nil, err
	}
	key := ctx.String("key")
	if key == "" {
		return nil, nil, fmt.Errorf("key argument missing")
	}
	return p, []byte(key), nil
}

var ecbDecryptCommand = cli.Command{
	Name:      "ecbdecrypt",
	Category:  "Block modes",
	Usage:     "Decrypt base64 ciphertext in ECB mode.",
	ArgsUsage: "[base64 file]",
	Flags:     []cli.Flag{keyFlag},
	Action:    ecbDecrypt,
}

func ecbDecrypt(ctx *cli.Context) error {
	p, key, err := primitive(ctx)
	if err != nil {
		return err
	}
	ct, err := readBase64(ctx)
	if err != nil {
		return err
	}
	b, err := p(key)
	if err != nil {
		return &crypto.PrimitiveError{Op: "key", Err: err}
	}
	if len(ct)%b.BlockSize() != 0 {
		return crypto.ErrCiphertextLength
	}
	pt := make([]byte, len(ct))
	crypto.NewECBDecrypter(b).CryptBlocks(pt, ct)
	_, err = ctx.App.Writer.Write(crypto.Unpad(pt, b.BlockSize()))
	return err
}

var cbcEncryptCommand = cli.Command{
	Name:      "cbcencrypt",
	Category:  "Block modes",
	Usage:     "Encrypt a file in CBC mode, printing base64.",
	ArgsUsage: "[file]",
	Flags:     []cli.Flag{keyFlag, ivFlag},
	Action:    cbcEncrypt,
}

func cbcEncrypt(ctx *cli.Context) error {
	p, key, err := primitive(ctx)
	if err != nil {
		return err
	}
	iv, err := parseIV(ctx.String("iv"), 16)
	if err != nil {
		return err
	}
	pt, err := readInput(ctx)
	if err != nil {
		return err
	}
	ct, err := crypto.NewCBC(p).Encrypt(key, iv, pt)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, base64.StdEncoding.EncodeToString(ct))
	return nil
}

var cbcDecryptCommand = cli.Command{
	Name:      "cbcdecrypt",
	Category:  "Block modes",
	Usage:     "Decrypt base64 ciphertext in CBC mode.",
	ArgsUsage: "[base64 file]",
	Flags: []cli.Flag{
		keyFlag,
		ivFlag,
		cli.BoolFlag{
			Name:  "strict",
			Usage: "Fail if the plaintext does not end in valid padding. " +
				"Messages that were already a multiple of the block size " +
				"carry no padding and are always rejected.",
		},
	},
	Action: cbcDecrypt,
}

func cbcDecrypt(ctx *cli.Context) error {
	p, key, err := primitive(ctx)
	if err != nil {
		return err
	}
	iv, err := parseIV(ctx.String("iv"), 16)
	if err != nil {
		return err
	}
	ct, err := readBase64(ctx)
	if err != nil {
		return err
	}
	cbc := crypto.NewCBC(p)
	decrypt := cbc.Decrypt
	if ctx.Bool("strict") {
		decrypt = cbc.DecryptChecked
	}
	pt, err := decrypt(key, iv, ct)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(pt)
	return err
}

var padCommand = cli.Command{
	Name:      "pad",
	Category:  "Block modes",
	Usage:     "Pad a file to a multiple of the block size, printing hex.",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "blocksize",
			Usage: "The block size, between 1 and 255.",
			Value: 16,
		},
	},
	Action: pad,
}

func pad(ctx *cli.Context) error {
	bs := ctx.Int("blocksize")
	if bs < 1 || bs > 255 {
		return fmt.Errorf("block size %d out of range [1, 255]", bs)
	}
	data, err := readInput(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(crypto.Pad(nil, data, bs)))
	return nil
}
