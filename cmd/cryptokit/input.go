package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
)

// stdin is read when a command is given no file argument.
var stdin io.Reader = os.Stdin

func readInput(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one file, got %d", ctx.NArg())
	}
	if ctx.NArg() == 1 {
		return os.ReadFile(ctx.Args().First())
	}
	return io.ReadAll(stdin)
}

// readHex reads hex input, ignoring whitespace.
func readHex(ctx *cli.Context) ([]byte, error) {
	data, err := readInput(ctx)
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, fmt.Errorf("decoding hex: %w", err)
	}
	return b, nil
}

// readHexLines reads one hex encoded ciphertext per line. Blank lines are
// skipped.
func readHexLines(ctx *cli.Context) ([][]byte, error) {
	data, err := readInput(ctx)
	if err != nil {
		return nil, err
	}
	var cts [][]byte
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ct, err := hex.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("decoding hex on line %d: %w", i+1, err)
		}
		cts = append(cts, ct)
	}
	return cts, nil
}

// readBase64 reads base64 input that may be wrapped over several lines.
func readBase64(ctx *cli.Context) ([]byte, error) {
	data, err := readInput(ctx)
	if err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}
	return b, nil
}

// parseIV decodes a hex IV, defaulting to all zeroes of the given size.
func parseIV(s string, size int) ([]byte, error) {
	if s == "" {
		return make([]byte, size), nil
	}
	iv, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding iv: %w", err)
	}
	return iv, nil
}
