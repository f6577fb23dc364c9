package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()

	pair, err := GenerateTokenPair(userID, "admin", "admin@example.com", "test-secret")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("both tokens must be issued")
	}
	if pair.TokenType != "Bearer" {
		t.Fatalf("unexpected token type %q", pair.TokenType)
	}

	claims, err := ValidateToken(pair.AccessToken, "test-secret")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Fatalf("expected user %s, got %s", userID.Hex(), claims.UserID)
	}
	if claims.Role != "admin" || claims.Email != "admin@example.com" {
		t.Fatalf("claims not carried: %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair(primitive.NewObjectID(), "user", "u@example.com", "secret-a")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ValidateToken(pair.AccessToken, "secret-b"); err == nil {
		t.Fatal("token signed with a different secret must not validate")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "secret"); err == nil {
		t.Fatal("garbage must not validate")
	}
}
