package main

import (
	"encoding/base64"
	"os"
	"testing"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func readBase64File(t *testing.T, path string) []byte {
	t.Helper()
	bdata := readFile(t, path)
	data := make([]byte, base64.StdEncoding.DecodedLen(len(bdata)))
	n, err := base64.StdEncoding.Decode(data, bdata)
	if err != nil {
		t.Fatalf("decoding base64 %s: %v", path, err)
	}
	data = data[:n]
	return data
}
