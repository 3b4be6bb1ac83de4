package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	tokenStr, err := GenerateToken(secret, "user-1", TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, TypeAccess, tokenStr)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("user_id = %s, want user-1", claims.UserID)
	}
}

func TestParseRejectsWrongType(t *testing.T) {
	tokenStr, err := GenerateToken(secret, "user-1", TypeRefresh, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(secret, TypeAccess, tokenStr); err == nil {
		t.Fatal("expected refresh token rejected as access token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken(secret, "user-1", TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken([]byte("other-secret"), TypeAccess, tokenStr); err == nil {
		t.Fatal("expected signature mismatch")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	tokenStr, err := GenerateToken(secret, "user-1", TypeAccess, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(secret, TypeAccess, tokenStr); err == nil {
		t.Fatal("expected expired token rejected")
	}
}

func TestShouldRotateRefreshToken(t *testing.T) {
	near, err := GenerateToken(secret, "user-1", TypeRefresh, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken(secret, TypeRefresh, near)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !ShouldRotateRefreshToken(claims, 2*time.Hour) {
		t.Error("token within buffer should rotate")
	}
	if ShouldRotateRefreshToken(claims, 10*time.Minute) {
		t.Error("token outside buffer should not rotate")
	}
}

func TestOTPTokenRoundTrip(t *testing.T) {
	tokenStr, err := GenerateOTPToken(secret, "a@example.com", "deadbeef", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseOTPToken(secret, tokenStr)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "a@example.com" || claims.CodeHash != "deadbeef" {
		t.Errorf("claims = %+v", claims)
	}

	// 普通 token 不能当 OTP token 用
	plain, err := GenerateToken(secret, "user-1", TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseOTPToken(secret, plain); err == nil {
		t.Fatal("expected access token rejected as otp token")
	}
}
