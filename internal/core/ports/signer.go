package ports

import "time"

// SignOptions fixes the registered claims attached to a signed token.
type SignOptions struct {
	Subject   string
	ExpiresIn time.Duration
	Audience  string
	Issuer    string
}

// TokenSigner signs a claim set into a compact token string. The signing
// algorithm and key handling belong to the implementation.
type TokenSigner interface {
	Sign(claims map[string]any, opts SignOptions) (string, error)
}
