package domain

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestNewCipherRejectsOutOfRangeShift(t *testing.T) {
	for _, shift := range []int{-1, 0, 26, 100} {
		t.Run(fmt.Sprint(shift), func(t *testing.T) {
			c, err := NewCipher(shift)
			if !errors.Is(err, ErrInvalidShift) {
				t.Fatalf("NewCipher(%d) error = %v, want ErrInvalidShift", shift, err)
			}
			if c != nil {
				t.Errorf("NewCipher(%d) returned a cipher alongside the error", shift)
			}
		})
	}
}

func TestNewCipherAcceptsBounds(t *testing.T) {
	for _, shift := range []int{MinShift, 13, MaxShift} {
		c, err := NewCipher(shift)
		if err != nil {
			t.Fatalf("NewCipher(%d) failed: %v", shift, err)
		}
		if c.Shift() != shift {
			t.Errorf("Shift() = %d, want %d", c.Shift(), shift)
		}
	}
}

func TestRoundTripAllShiftsAllLetters(t *testing.T) {
	for shift := MinShift; shift <= MaxShift; shift++ {
		c, err := NewCipher(shift)
		if err != nil {
			t.Fatalf("NewCipher(%d) failed: %v", shift, err)
		}
		for b := 0; b < 256; b++ {
			in := byte(b)
			enc := c.TransformByte(in, Encrypt)
			if got := c.TransformByte(enc, Decrypt); got != in {
				t.Fatalf("shift %d: decrypt(encrypt(%q)) = %q", shift, in, got)
			}
		}
	}
}

func TestNonLettersUnchanged(t *testing.T) {
	c, _ := NewCipher(7)
	for b := 0; b < 256; b++ {
		in := byte(b)
		if (in >= 'A' && in <= 'Z') || (in >= 'a' && in <= 'z') {
			continue
		}
		for _, mode := range []Mode{Encrypt, Decrypt} {
			if got := c.TransformByte(in, mode); got != in {
				t.Errorf("%s(%#x) = %#x, want unchanged", mode, in, got)
			}
		}
	}
}

func TestLettersStayInCase(t *testing.T) {
	c, _ := NewCipher(25)
	for b := byte('A'); b <= 'Z'; b++ {
		if got := c.TransformByte(b, Encrypt); got < 'A' || got > 'Z' {
			t.Errorf("encrypt(%q) = %q left the upper case alphabet", b, got)
		}
	}
	for b := byte('a'); b <= 'z'; b++ {
		if got := c.TransformByte(b, Decrypt); got < 'a' || got > 'z' {
			t.Errorf("decrypt(%q) = %q left the lower case alphabet", b, got)
		}
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		shift int
		mode  Mode
		in    string
		want  string
	}{
		{3, Encrypt, "Attack at dawn", "Dwwdfn dw gdzq"},
		{3, Decrypt, "Dwwdfn dw gdzq", "Attack at dawn"},
		{1, Encrypt, "xyz XYZ", "yza YZA"},
		{1, Decrypt, "abc ABC", "zab ZAB"},
		{13, Encrypt, "Hello, World! 123", "Uryyb, Jbeyq! 123"},
		{5, Encrypt, "", ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d/%s", tt.mode, tt.shift, tt.in), func(t *testing.T) {
			c, err := NewCipher(tt.shift)
			if err != nil {
				t.Fatalf("NewCipher failed: %v", err)
			}
			in := []byte(tt.in)
			got := c.Transform(in, tt.mode)
			if string(got) != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if !bytes.Equal(in, []byte(tt.in)) {
				t.Errorf("Transform modified its input")
			}
		})
	}
}
