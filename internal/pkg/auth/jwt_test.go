package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/campushq/recruithub/internal/app/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "recruiter@recruithub.io",
		RoleType: models.RoleRecruiter,
		IsActive: true,
	}
}

func newTestService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "recruithub.test",
	})
}

func TestGenerateAndParseTokenPair(t *testing.T) {
	svc := newTestService(time.Hour)

	pair, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if pair.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d, want 3600", pair.ExpiresIn)
	}
	if pair.RefreshExpiresIn != 86400 {
		t.Errorf("RefreshExpiresIn = %d, want 86400", pair.RefreshExpiresIn)
	}

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleRecruiter {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleRecruiter)
	}
	if claims.Issuer != "recruithub.test" {
		t.Errorf("Issuer = %q, want recruithub.test", claims.Issuer)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	pair, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := svc.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ParseAccessToken = %v, want ErrExpiredToken", err)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	pair, err := newTestService(time.Hour).GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "a-different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "recruithub.test",
	})
	if _, err := other.ParseAccessToken(pair.AccessToken); err == nil {
		t.Error("expected parsing to fail with a different secret")
	}
}

func TestParseAccessToken_WrongIssuer(t *testing.T) {
	pair, err := newTestService(time.Hour).GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "some-other-service",
	})
	if _, err := other.ParseAccessToken(pair.AccessToken); err == nil {
		t.Error("expected parsing to fail for a foreign issuer")
	}
}

func TestParseAccessToken_Empty(t *testing.T) {
	svc := newTestService(time.Hour)
	if _, err := svc.ParseAccessToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ParseAccessToken(\"\") = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix stripped", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "scheme is case-insensitive", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token accepted", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "wrong scheme rejected", header: "Basic abc.def.ghi", wantErr: true},
		{name: "empty header rejected", header: "", wantErr: true},
		{name: "extra parts rejected", header: "Bearer abc def", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "Sup3rSecret!") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
