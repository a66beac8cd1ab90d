package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"yin/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/pbkdf2"
	"gorm.io/gorm"
)

const (
	hashIterations = 150_000
	saltLength     = 16
	tokenLifetime  = 24 * time.Hour
)

// ErrInvalidCredentials indicates a failed username/password check.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims are the JWT claims issued on login.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users     *repositories.UserRepository
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		users:     repositories.NewUserRepository(db),
		jwtSecret: jwtSecret,
	}
}

// hashPassword derives a PBKDF2-SHA256 key from the password and salt.
func hashPassword(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, hashIterations, sha256.Size, sha256.New)
	return hex.EncodeToString(key)
}

// EnsureUser creates the user with a fresh random salt unless the
// username already exists.
func (s *AuthService) EnsureUser(username, password string) error {
	_, err := s.users.GetByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	_, err = s.users.Create(username, hashPassword(password, salt), hex.EncodeToString(salt))
	if err != nil {
		return fmt.Errorf("failed to create user %q: %w", username, err)
	}
	slog.Info("user created", "username", username)
	return nil
}

// VerifyPassword recomputes the stored hash from the supplied password
// and compares in constant time.
func (s *AuthService) VerifyPassword(username, password string) (bool, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	salt, err := hex.DecodeString(user.Salt)
	if err != nil {
		return false, fmt.Errorf("corrupt salt for user %q: %w", username, err)
	}

	computed := hashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(user.PasswordHash)) == 1, nil
}

// Login verifies the credentials and issues a signed session token.
func (s *AuthService) Login(username, password string) (string, error) {
	ok, err := s.VerifyPassword(username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			Issuer:    "yin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
