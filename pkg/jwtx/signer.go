package jwtx

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// NewSignerHS256 creates an HS256 signer from a shared secret. The secret
// must be at least MinSecretBytes long.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256Signer(secret)
}
