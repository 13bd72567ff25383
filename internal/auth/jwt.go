package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrTokenRevoked = errors.New("token revoked")

// SessionTokenExpiry is fixed at issuance; the cookie max-age mirrors it.
const SessionTokenExpiry = 7 * 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
}

// IssueSessionToken returns a signed 7-day session token for the user.
// The JTI is what logout revokes.
func IssueSessionToken(secret, userID string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenExpiry)),
			ID:        uuid.New().String(),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// VerifySessionToken parses and validates the token string; returns claims or ErrInvalidToken.
// Bad signature, malformed payload, and elapsed expiry are deliberately indistinguishable.
func VerifySessionToken(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// RevocationChecker is implemented by the repository. Declared here to avoid an
// import cycle (repository imports auth for roles).
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// VerifySessionTokenWithRevocation validates the token and additionally rejects
// tokens whose JTI was revoked by logout. The revocation lookup is best-effort:
// a store error does not invalidate an otherwise good token.
func VerifySessionTokenWithRevocation(ctx context.Context, secret, tokenString string, rev RevocationChecker) (*Claims, error) {
	claims, err := VerifySessionToken(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if rev != nil && claims.ID != "" {
		revoked, err := rev.IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			return claims, nil
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}
	return claims, nil
}
