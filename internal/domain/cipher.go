package domain

import (
	"errors"
	"fmt"
)

const (
	MinShift = 1
	MaxShift = 25

	alphabetSize = 26
)

// ErrInvalidShift is returned when a cipher is constructed with a shift
// outside [MinShift, MaxShift].
var ErrInvalidShift = errors.New("invalid shift")

// Cipher rotates ASCII letters by a fixed shift. The zero value is not usable;
// construct one with NewCipher.
type Cipher struct {
	shift int
}

// NewCipher returns a Cipher for the given shift
func NewCipher(shift int) (*Cipher, error) {
	if shift < MinShift || shift > MaxShift {
		return nil, fmt.Errorf("%w: shift value must be between %d and %d", ErrInvalidShift, MinShift, MaxShift)
	}
	return &Cipher{shift: shift}, nil
}

func (c *Cipher) Shift() int {
	return c.shift
}

// TransformByte maps a single byte. Bytes outside A-Z and a-z are returned
// unchanged; letters rotate within their own case.
func (c *Cipher) TransformByte(b byte, mode Mode) byte {
	var base byte
	switch {
	case b >= 'A' && b <= 'Z':
		base = 'A'
	case b >= 'a' && b <= 'z':
		base = 'a'
	default:
		return b
	}

	offset := c.shift
	if mode == Decrypt {
		offset = alphabetSize - c.shift
	}
	return base + byte((int(b-base)+offset)%alphabetSize)
}

// Transform maps every byte of p into a newly allocated slice.
func (c *Cipher) Transform(p []byte, mode Mode) []byte {
	out := make([]byte, len(p))
	for i, b := range p {
		out[i] = c.TransformByte(b, mode)
	}
	return out
}
