package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/GlebRadaev/fruitshop/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

type HashService struct{}

func (b *HashService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrValidation)
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

const legacySalt = "fruit_shop_salt"

// LegacyHashService reproduces the storefront demo's credential encoding:
// base64 of the password followed by a fixed salt. It is reversible and
// offers no protection; use HashService for anything real.
type LegacyHashService struct{}

func (l *LegacyHashService) HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return base64.StdEncoding.EncodeToString([]byte(password + legacySalt)), nil
}

func (l *LegacyHashService) ComparePassword(hashedPassword, password string) bool {
	expected := base64.StdEncoding.EncodeToString([]byte(password + legacySalt))
	return subtle.ConstantTimeCompare([]byte(hashedPassword), []byte(expected)) == 1
}

// NewHashService returns the hasher registered under name.
func NewHashService(name string) (HashServiceInterface, error) {
	switch name {
	case "", "bcrypt":
		return &HashService{}, nil
	case "legacy":
		return &LegacyHashService{}, nil
	default:
		return nil, errors.New("unsupported hasher: " + name)
	}
}
