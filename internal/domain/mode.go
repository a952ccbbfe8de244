package domain

import (
	"fmt"
	"strings"
)

// Mode selects the rotation direction of a Cipher.
type Mode int

const (
	Encrypt Mode = iota + 1
	Decrypt
)

var knownModes = []Mode{Encrypt, Decrypt}

// ParseMode accepts "encrypt", "decrypt" and the menu numbers "1" and "2".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc", "1":
		return Encrypt, nil
	case "decrypt", "dec", "2":
		return Decrypt, nil
	}
	return 0, fmt.Errorf("unknown mode %q, expected one of [%s]", s, KnownModes())
}

// KnownModes lists the canonical mode names, comma separated.
func KnownModes() string {
	names := make([]string, len(knownModes))
	for i, m := range knownModes {
		names[i] = m.String()
	}
	return strings.Join(names, ",")
}

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	}
	return ""
}

// Verb is the noun form used in user-facing status lines.
func (m Mode) Verb() string {
	switch m {
	case Encrypt:
		return "Encryption"
	case Decrypt:
		return "Decryption"
	}
	return "Processing"
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}
