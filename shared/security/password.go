package security

import (
	"github.com/matthewhartstonge/argon2"
)

var argon = argon2.DefaultConfig()

// HashPassword returns the argon2id encoded hash of password.
func HashPassword(password string) (string, error) {
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded hash.
func VerifyPassword(password, encoded string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encoded))
}
