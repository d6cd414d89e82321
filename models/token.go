package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the claim set embedded in every issued JWT.
//
// On top of the standard registered claims (exp, iat, iss) it carries the
// authenticated identity: the numeric user ID and the email the account was
// registered with. Both are trusted downstream without a database round-trip,
// so the claims must only ever be produced by the signing service.
type TokenClaims struct {
	// UserID is the owner identifier of the token.
	UserID int64 `json:"user_id"`

	// Email is the address of the account the token was issued for.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token wraps an issued or parsed JWT together with its decoded claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
