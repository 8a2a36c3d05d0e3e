// Package ident generates and parses blog storage identifiers.
//
// Identifiers are 12 bytes laid out as a 4-byte big-endian timestamp, a
// 3-byte machine id, a 2-byte process id and a 3-byte counter, rendered as
// 24 lowercase hex characters.
package ident

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/rs/xid"
)

const encodedLen = 24

var ErrMalformedID = errors.New("malformatted id")

// New returns a fresh identifier. Identifiers created later sort after
// earlier ones from the same process.
func New() string {
	return hex.EncodeToString(xid.New().Bytes())
}

// Parse validates id and returns it in canonical lowercase form.
func Parse(id string) (string, error) {
	if len(id) != encodedLen {
		return "", ErrMalformedID
	}

	raw, err := hex.DecodeString(id)
	if err != nil {
		return "", ErrMalformedID
	}

	parsed, err := xid.FromBytes(raw)
	if err != nil {
		return "", ErrMalformedID
	}

	return hex.EncodeToString(parsed.Bytes()), nil
}

// MustParse is like Parse but panics on malformed input. Intended for fixtures.
func MustParse(id string) string {
	canonical, err := Parse(id)
	if err != nil {
		panic(err.Error() + ": " + strings.TrimSpace(id))
	}
	return canonical
}
