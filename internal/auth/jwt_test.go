package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/centavo/centavo-api/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "a-long-and-sufficiently-secure-test-secret"
const testUserID = "2f5a1f1e-9f0a-4c7e-8d4b-0c2d2f3a4b5c"
const testRole = "user"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty, but it did not.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("Wrong UserID. Expected: %s, got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Wrong role. Expected: %s, got: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should fail for an expired token, but it passed.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Wrong error for expired token. Expected: %v, got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("MalformedToken", func(t *testing.T) {
		_, err := auth.ValidateJWT("not-a-token")
		if err == nil {
			t.Fatal("ValidateJWT should fail for a malformed token, but it passed.")
		}
	})
}

func TestClaimsContextRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	claims, err := auth.ValidateJWT(tokenStr)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}

	ctx := auth.ContextWithUserClaims(t.Context(), claims)
	got, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		t.Fatalf("GetUserClaimsFromContext failed: %v", err)
	}
	if got.UserID != testUserID {
		t.Errorf("Wrong UserID from context. Expected: %s, got: %s", testUserID, got.UserID)
	}

	if _, err := auth.GetUserClaimsFromContext(t.Context()); !errors.Is(err, auth.ErrNoClaims) {
		t.Errorf("Expected ErrNoClaims for empty context, got: %v", err)
	}
}
