package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Compress gzips data and wraps it in base64 so it fits in text
// columns and generated source files.
func Compress(data []byte) string {
	var compressed bytes.Buffer
	w := gzip.NewWriter(&compressed)
	_, _ = w.Write(data)
	_ = w.Close()
	return base64.StdEncoding.EncodeToString(compressed.Bytes())
}

// Decompress reverses Compress.
func Decompress(data string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}
	zipReader, err := gzip.NewReader(bytes.NewReader(decoded))
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(zipReader)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// GenerateArchiveFile writes a Go source file carrying one compressed
// payload, so a dataset can ship inside the binary. The archive mode
// uses it to refresh the embedded sample data.
func GenerateArchiveFile(filename, packageName, varName string, data []byte) error {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by the archive mode. DO NOT EDIT.\n\n")
	buf.WriteString(fmt.Sprintf("package %s\n\n", packageName))
	buf.WriteString(fmt.Sprintf("var %s = %q\n", varName, Compress(data)))
	return os.WriteFile(filename, buf.Bytes(), 0644)
}
