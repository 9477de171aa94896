package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	SecretKeyAlphabet      = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	MinSecretKeyLength     = 32
	DefaultSecretKeyLength = 48
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errShortSecretKey = errors.New("secret key length is below the minimum")
)

// RandomString returns an unbiased string drawn from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// NewSecretKey generates a value suitable for SECRET_KEY, which signs the
// calculator cookie.
func NewSecretKey(length int) (string, error) {
	if length < MinSecretKeyLength {
		return "", errShortSecretKey
	}
	return RandomString(length, SecretKeyAlphabet)
}
