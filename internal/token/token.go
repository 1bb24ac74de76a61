// Package token mints opaque session tokens.
package token

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/sqids/sqids-go"
)

var ErrInvalidUserID = errors.New("user id must not be negative")

// Minter encodes a user id and a random nonce into a sqids string. The nonce
// makes every login produce a distinct token for the same user.
type Minter struct {
	sqids *sqids.Sqids
	rand  io.Reader
}

func New(minLength int) (*Minter, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: uint8(min(max(minLength, 0), 255)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqids encoder: %w", err)
	}
	return &Minter{sqids: s, rand: rand.Reader}, nil
}

func (m *Minter) Mint(userID int64) (string, error) {
	if userID < 0 {
		return "", ErrInvalidUserID
	}

	var buf [8]byte
	if _, err := io.ReadFull(m.rand, buf[:]); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}
	nonce := binary.BigEndian.Uint64(buf[:])

	tok, err := m.sqids.Encode([]uint64{uint64(userID), nonce})
	if err != nil {
		return "", fmt.Errorf("failed to encode token: %w", err)
	}
	return tok, nil
}

// UserID recovers the user id from a token minted by this Minter. It does not
// prove the token is live; that is the session store's job.
func (m *Minter) UserID(tok string) (int64, bool) {
	nums := m.sqids.Decode(tok)
	if len(nums) != 2 {
		return 0, false
	}
	canonical, err := m.sqids.Encode(nums)
	if err != nil || canonical != tok {
		return 0, false
	}
	return int64(nums[0]), true
}
