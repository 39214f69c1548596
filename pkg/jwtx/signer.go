package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum accepted HMAC secret size in bytes.
// Anything shorter than the hash output weakens HS256 for no reason.
const MinSecretLength = 32

// ErrWeakSecret reports a signing secret below MinSecretLength.
var ErrWeakSecret = errors.New("jwtx: signing secret shorter than 32 bytes")

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

type hs256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HS256 signer from a server-held secret. The
// secret comes from configuration; there is intentionally no default.
func NewSignerHS256(secret []byte) (Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &hs256Signer{key: secret}, nil
}

func (s *hs256Signer) Alg() string { return "HS256" }

func (s *hs256Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.key)
}
