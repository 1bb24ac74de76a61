package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzametrics/internal/token"
)

func TestNew(t *testing.T) {
	m, err := token.New(16)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestMint_MinLength(t *testing.T) {
	m, err := token.New(16)
	require.NoError(t, err)

	tok, err := m.Mint(1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(tok), 16)
	assert.Regexp(t, `^[a-zA-Z0-9]+$`, tok)
}

func TestMint_DistinctPerCall(t *testing.T) {
	m, err := token.New(16)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for range 100 {
		tok, err := m.Mint(42)
		require.NoError(t, err)
		seen[tok] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestMint_NegativeUserID(t *testing.T) {
	m, err := token.New(16)
	require.NoError(t, err)

	_, err = m.Mint(-1)
	assert.ErrorIs(t, err, token.ErrInvalidUserID)
}

func TestUserID_RoundTrip(t *testing.T) {
	m, err := token.New(16)
	require.NoError(t, err)

	for _, id := range []int64{0, 1, 42, 1 << 40} {
		tok, err := m.Mint(id)
		require.NoError(t, err)

		got, ok := m.UserID(tok)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestUserID_Garbage(t *testing.T) {
	m, err := token.New(16)
	require.NoError(t, err)

	for _, tok := range []string{"", "!!!", "abc"} {
		_, ok := m.UserID(tok)
		assert.False(t, ok, tok)
	}
}
