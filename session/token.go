package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// NewToken generates a cryptographically secure session token.
// 32 bytes = 256 bits of entropy.
func NewToken() (string, error) {
	const size = 32

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Sign produces the cookie value for a token: the token followed by an
// HMAC-SHA256 signature, so a client cannot forge another session's token.
func Sign(token string, secret []byte) string {
	return token + "." + signature(token, secret)
}

// Verify checks a cookie value's signature and returns the embedded token.
func Verify(value string, secret []byte) (string, bool) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(signature(token, secret))) {
		return "", false
	}
	return token, true
}

func signature(token string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
