package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsParseable(t *testing.T) {
	id := New()
	assert.Len(t, id, 24)

	parsed, err := Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"seed id", "5a422a851b54a676234d17f7", "5a422a851b54a676234d17f7", nil},
		{"uppercase is canonicalised", "5A422AA71B54A676234D17F8", "5a422aa71b54a676234d17f8", nil},
		{"empty", "", "", ErrMalformedID},
		{"too short", "5a422a85", "", ErrMalformedID},
		{"too long", "5a422a851b54a676234d17f700", "", ErrMalformedID},
		{"not hex", "zzzzzzzzzzzzzzzzzzzzzzzz", "", ErrMalformedID},
		{"uuid", "3f1f6c1e-8d2b-4f0a-9c1e-1b2c3d4e5f60", "", ErrMalformedID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
	assert.Equal(t, "5a422b3a1b54a676234d17f9", MustParse("5a422b3a1b54a676234d17f9"))
}
