package domain

import (
	"fmt"

	"github.com/alexedwards/argon2id"
)

// OWASP minimum for argon2id: 19 MiB, two passes, one lane.
var optimizedParams = &argon2id.Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

type ArgonPasswordHasher struct {
	params *argon2id.Params
}

func NewArgonPasswordHasher() *ArgonPasswordHasher {
	return &ArgonPasswordHasher{
		params: optimizedParams,
	}
}

func (ph *ArgonPasswordHasher) HashPassword(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, ph.params)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

// VerifyPassword reports whether password matches the stored hash. A malformed
// hash is an error, a wrong password is not.
func (ph *ArgonPasswordHasher) VerifyPassword(password, hashedPassword string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, hashedPassword)
}
