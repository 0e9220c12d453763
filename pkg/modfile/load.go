// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrRead is wrapped by LoadJSON when the file cannot be read.
	ErrRead = errors.New("read error")
	// ErrParse is wrapped by LoadJSON when the file is not valid JSON.
	ErrParse = errors.New("json parse error")
)

// IsSafeRelative reports whether p can be joined under a mod directory without
// escaping it: it must be non-empty, relative, and contain no ".." or empty
// segment. A single trailing separator is tolerated. Both "/" and the OS
// separator are treated as separators.
func IsSafeRelative(p string) bool {
	if p == "" || filepath.IsAbs(p) || strings.HasPrefix(p, "/") || filepath.VolumeName(p) != "" {
		return false
	}
	p = filepath.ToSlash(p)
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." || strings.TrimSpace(seg) == "" {
			return false
		}
	}
	return true
}

// LoadJSON reads and decodes the JSON document at path. Numbers are kept as
// json.Number so that integers and floats can be told apart. The returned error
// wraps ErrRead or ErrParse.
func LoadJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return decodeJSON(data)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value at offset %d", ErrParse, dec.InputOffset())
	}
	return v, nil
}
