package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_SealOpen(t *testing.T) {
	s, err := NewSealer("correct horse battery staple")
	require.NoError(t, err)

	token := "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig"
	sealed, err := s.Seal(token)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, token)

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, token, opened)
}

func TestSealer_NonceMakesOutputsDiffer(t *testing.T) {
	s, err := NewSealer("key")
	require.NoError(t, err)

	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSealer_EmptyStaysEmpty(t *testing.T) {
	s, err := NewSealer("key")
	require.NoError(t, err)

	sealed, err := s.Seal("")
	require.NoError(t, err)
	assert.Empty(t, sealed)
}

func TestSealer_OpenUnsealedPassesThrough(t *testing.T) {
	s, err := NewSealer("key")
	require.NoError(t, err)

	got, err := s.Open("legacy-plain-token")
	require.NoError(t, err)
	assert.Equal(t, "legacy-plain-token", got)
}

func TestSealer_OtherInstanceSameKeyOpens(t *testing.T) {
	a, err := NewSealer("shared")
	require.NoError(t, err)
	b, err := NewSealer("shared")
	require.NoError(t, err)

	sealed, err := a.Seal("token")
	require.NoError(t, err)

	got, err := b.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "token", got)
}

func TestSealer_WrongKey(t *testing.T) {
	a, err := NewSealer("right")
	require.NoError(t, err)
	b, err := NewSealer("wrong")
	require.NoError(t, err)

	sealed, err := a.Seal("token")
	require.NoError(t, err)

	_, err = b.Open(sealed)
	assert.ErrorIs(t, err, ErrOpen)
}

func TestSealer_Tampered(t *testing.T) {
	s, err := NewSealer("key")
	require.NoError(t, err)

	tests := map[string]string{
		"bad base64": sealedPrefix + "!!!",
		"too short":  sealedPrefix + "AAAA",
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Open(value)
			assert.ErrorIs(t, err, ErrOpen)
		})
	}
}

func TestPlainSealer(t *testing.T) {
	s, err := NewSealer("")
	require.NoError(t, err)

	sealed, err := s.Seal("token")
	require.NoError(t, err)
	assert.Equal(t, "token", sealed)

	opened, err := s.Open("token")
	require.NoError(t, err)
	assert.Equal(t, "token", opened)

	_, err = s.Open(sealedPrefix + "AAAA")
	assert.ErrorIs(t, err, ErrKeyRequired)
}
