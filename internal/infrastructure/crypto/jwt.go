package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/identora/account-system/internal/core/ports"
)

// JWTSigner signs claim sets as HS256 JWTs.
type JWTSigner struct {
	secret []byte
}

var _ ports.TokenSigner = JWTSigner{}

func NewJWTSigner(secret string) JWTSigner {
	return JWTSigner{secret: []byte(secret)}
}

// Sign merges the custom claims with the registered claims from opts and
// returns the compact signed token.
func (s JWTSigner) Sign(claims map[string]any, opts ports.SignOptions) (string, error) {
	now := time.Now()

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["sub"] = opts.Subject
	mc["aud"] = opts.Audience
	mc["iss"] = opts.Issuer
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(opts.ExpiresIn).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
}
