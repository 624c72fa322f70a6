package valueobject

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	ShareTokenBytes     = 32
	ShareTokenLength    = ShareTokenBytes * 2
	shareTokenLogPrefix = 8
)

// ShareToken is the bearer credential for anonymous read access to a public album.
type ShareToken string

func NewShareToken() (ShareToken, error) {
	b := make([]byte, ShareTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating random bytes: %w", err)
	}
	return ShareToken(hex.EncodeToString(b)), nil
}

func (t ShareToken) String() string {
	return string(t)
}

// Prefix returns the leading characters of the token, safe to write to logs.
func (t ShareToken) Prefix() string {
	return TokenPrefix(string(t))
}

func TokenPrefix(token string) string {
	if len(token) <= shareTokenLogPrefix {
		return token + "..."
	}
	return token[:shareTokenLogPrefix] + "..."
}
