package auth

import (
	"time"
)

// IdentityClaims represents the claims stored in a PASETO access token.
// These are encrypted in v4.local tokens, so they're not readable without the key.
// The subject is the only application-level fact a token carries; everything else
// is standard token bookkeeping.
type IdentityClaims struct {
	// Standard PASETO claims
	Issuer     string    `json:"iss"`
	Subject    string    `json:"sub"`
	Audience   string    `json:"aud"`
	Expiration time.Time `json:"exp"`
	NotBefore  time.Time `json:"nbf"`
	IssuedAt   time.Time `json:"iat"`
	TokenID    string    `json:"jti"`
}

// SubjectID returns the user ID the token was issued for.
func (c *IdentityClaims) SubjectID() string {
	return c.Subject
}
