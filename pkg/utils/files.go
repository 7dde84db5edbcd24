package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned by ReadSource for files that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// GetPathInfo resolves relPath to a cleaned absolute path and the directory
// that contains it.
func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	return fullPath, filepath.Dir(fullPath), nil
}

// ReadSource reads the whole file at path as UTF-8 text. A leading byte
// order mark is dropped so it does not end up inside the first token.
// Errors name the file by its absolute path.
func ReadSource(path string) (string, error) {
	fullPath, _, err := GetPathInfo(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", err
	}
	src, err := DecodeSource(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", fullPath, err)
	}
	return src, nil
}

// DecodeSource is ReadSource for bytes already in memory.
func DecodeSource(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode source: %w", err)
	}
	return string(text), nil
}
