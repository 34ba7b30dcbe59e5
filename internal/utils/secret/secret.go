package secret

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch возвращается при несовпадении ключа с хешем
var ErrMismatch = errors.New("secret does not match")

// Verifier проверяет предъявленный ключ шлюза против bcrypt-хеша.
// Сам ключ нигде не хранится, сервис знает только хеш
type Verifier struct {
	hash string
}

// NewVerifier создает новый Verifier
func NewVerifier(hash string) *Verifier {
	return &Verifier{hash: hash}
}

// Verify сравнивает предъявленный ключ с хешем
func (v *Verifier) Verify(key string) error {
	if v.hash == "" || key == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(key))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("failed to verify secret: %w", err)
	}

	return nil
}

// Hash хеширует ключ с дефолтной стоимостью. Используется утилитами
// для первоначальной генерации GATEWAY_KEY_HASH
func Hash(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("secret cannot be empty")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(hashedBytes), nil
}
