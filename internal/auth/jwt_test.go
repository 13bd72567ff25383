package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-minimum-32-characters-long-for-hmac"

func TestIssueSessionToken(t *testing.T) {
	userID := "user-123"

	token, err := IssueSessionToken(testSecret, userID)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}
	if token == "" {
		t.Error("Token should not be empty")
	}

	claims, err := VerifySessionToken(testSecret, token)
	if err != nil {
		t.Fatalf("Failed to verify token: %v", err)
	}
	if claims.Subject != userID {
		t.Errorf("Expected subject %s, got %s", userID, claims.Subject)
	}
	if claims.ID == "" {
		t.Error("Token should carry a JTI")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("Token should have expiration time")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 7*24*time.Hour-time.Minute || ttl > 7*24*time.Hour {
		t.Errorf("Expected ~7 day expiry, got %v", ttl)
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	token, err := IssueSessionToken(testSecret, "user-123")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	_, err = VerifySessionToken("wrong-secret-key-minimum-32-characters-long", token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken with wrong secret, got %v", err)
	}
}

func TestVerifySessionToken_Malformed(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := VerifySessionToken(testSecret, tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	// Hand-build a token whose expiry has already elapsed; the signature is valid.
	now := time.Now()
	claims := Claims{expiredClaims(now)}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	_, err = VerifySessionToken(testSecret, signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func expiredClaims(now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(now.Add(-48 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		ID:        "expired-token",
	}
}

type fakeRevocation struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocation) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[tokenID], nil
}

func TestVerifySessionTokenWithRevocation(t *testing.T) {
	token, err := IssueSessionToken(testSecret, "user-123")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	claims, err := VerifySessionToken(testSecret, token)
	if err != nil {
		t.Fatalf("Failed to verify token: %v", err)
	}

	rev := &fakeRevocation{revoked: map[string]bool{}}
	if _, err := VerifySessionTokenWithRevocation(context.Background(), testSecret, token, rev); err != nil {
		t.Errorf("Unrevoked token should verify, got %v", err)
	}

	rev.revoked[claims.ID] = true
	if _, err := VerifySessionTokenWithRevocation(context.Background(), testSecret, token, rev); !errors.Is(err, ErrTokenRevoked) {
		t.Errorf("Expected ErrTokenRevoked, got %v", err)
	}
}

func TestVerifySessionTokenWithRevocation_StoreErrorIsBestEffort(t *testing.T) {
	token, err := IssueSessionToken(testSecret, "user-123")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	rev := &fakeRevocation{err: errors.New("db down")}
	if _, err := VerifySessionTokenWithRevocation(context.Background(), testSecret, token, rev); err != nil {
		t.Errorf("Revocation store error should not invalidate token, got %v", err)
	}
}
