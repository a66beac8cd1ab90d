package services

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestEnsureUserIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	if err := svc.EnsureUser("admin", "first"); err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}
	// The second call must not replace the existing credentials.
	if err := svc.EnsureUser("admin", "second"); err != nil {
		t.Fatalf("second EnsureUser: %v", err)
	}

	ok, err := svc.VerifyPassword("admin", "first")
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Fatal("original password should still verify")
	}
}

func TestVerifyPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	if err := svc.EnsureUser("admin", "s3cret"); err != nil {
		t.Fatalf("EnsureUser: %v", err)
	}

	cases := []struct {
		username string
		password string
		want     bool
	}{
		{"admin", "s3cret", true},
		{"admin", "wrong", false},
		{"admin", "", false},
		{"nobody", "s3cret", false},
	}
	for _, tc := range cases {
		ok, err := svc.VerifyPassword(tc.username, tc.password)
		if err != nil {
			t.Fatalf("VerifyPassword(%s): %v", tc.username, err)
		}
		if ok != tc.want {
			t.Fatalf("VerifyPassword(%s, %s) = %v, want %v", tc.username, tc.password, ok, tc.want)
		}
	}
}

func TestSaltsAreUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	svc.EnsureUser("one", "same-password")
	svc.EnsureUser("two", "same-password")

	first, err := svc.users.GetByUsername("one")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	second, err := svc.users.GetByUsername("two")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if first.Salt == second.Salt {
		t.Fatal("expected per-user random salts")
	}
	if first.PasswordHash == second.PasswordHash {
		t.Fatal("same password must hash differently under different salts")
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	svc.EnsureUser("admin", "s3cret")

	token, err := svc.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not parse: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("expected username claim admin, got %q", claims.Username)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testSecret)

	svc.EnsureUser("admin", "s3cret")

	if _, err := svc.Login("admin", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("ghost", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
