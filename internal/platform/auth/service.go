// Package auth は管理アカウントのログインと API の保護を受け持つ。
// アカウントは設定で1件だけ持つ運用（upstream 側に認証基盤はない）。
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrAuthFailed = errors.New("authentication failed")

type Service struct {
	secret       []byte
	email        string
	passwordHash string // bcrypt
}

func NewService(secret, email, passwordHash string) *Service {
	return &Service{
		secret:       []byte(secret),
		email:        email,
		passwordHash: passwordHash,
	}
}

func (s *Service) Secret() []byte {
	return s.secret
}

// Login は設定済みアカウントと照合して JWT を返す。
func (s *Service) Login(email, password string) (string, error) {
	if s.email == "" || s.passwordHash == "" {
		return "", errors.New("server auth is not configured")
	}
	if email != s.email {
		return "", ErrAuthFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrAuthFailed
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.secret)
}
