package domain

//go:generate mockgen -source=password_hashing.go -destination=../../../gen/mocks/auth/password_hashing.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}
