package jwt

import (
	"errors"
	"testing"
)

const (
	testSecret        = "test-secret"
	testRefreshSecret = "test-refresh-secret"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user001", "maria@torrealta.co", "María González", "Residente/Arrendador", testSecret, 15)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateAccessToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}

	if claims.UserID != "user001" || claims.Email != "maria@torrealta.co" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Rol != "Residente/Arrendador" {
		t.Errorf("rol = %s", claims.Rol)
	}
	if claims.Issuer != "torrealta-portal" {
		t.Errorf("issuer = %s", claims.Issuer)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("user001", "a@b.co", "A", "Administrador", testSecret, 15)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := ValidateAccessToken(token, "otro-secreto"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken("user001", "a@b.co", "A", "Administrador", testSecret, -1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := ValidateAccessToken(token, testSecret); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("user001", "tok-123", testRefreshSecret, 7)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := ValidateRefreshToken(token, testRefreshSecret)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if claims.UserID != "user001" || claims.TokenID != "tok-123" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestRefreshTokenGarbage(t *testing.T) {
	if _, err := ValidateRefreshToken("no.es.jwt", testRefreshSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
