package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	info := UserInfo{UserID: 7, Email: "alice@example.com", Role: 1}
	tokenString, err := GenerateToken(info)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := VerifyToken(tokenString)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}

	if claims.UserInfo != info {
		t.Errorf("expected %+v, got %+v", info, claims.UserInfo)
	}
	if claims.ID == "" {
		t.Error("expected a jti")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	tokenString, err := GenerateToken(UserInfo{UserID: 1})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := VerifyToken(tokenString); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := &Claims{
		UserInfo: UserInfo{UserID: 1},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "expired",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyToken(tokenString); err == nil {
		t.Error("expected verification to fail for an expired token")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := VerifyToken("not.a.token"); err == nil {
		t.Error("expected verification to fail")
	}
}
