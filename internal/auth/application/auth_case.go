package application

import (
	"context"
	"time"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/domain"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/jwt"
)

const (
	tokenTimeLimit = time.Hour

	credentialsMismatchMsg = "username or password is incorrect"
)

type Authenticator struct {
	credentialsRepository domain.CredentialsRepository
	passwordHasher        domain.PasswordHasher
	tokenIssuer           jwt.TokenIssuer
	secretKey             []byte
}

func NewAuthenticator(
	credentialsRepository domain.CredentialsRepository,
	passwordHasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
) *Authenticator {
	return &Authenticator{
		credentialsRepository: credentialsRepository,
		passwordHasher:        passwordHasher,
		tokenIssuer:           tokenIssuer,
		secretKey:             []byte(secretKey),
	}
}

// SignIn returns a signed token for valid credentials. Unknown usernames and
// wrong passwords produce the same error.
func (a *Authenticator) SignIn(ctx context.Context, username, password string) (string, error) {
	credentials, found, err := a.credentialsRepository.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if !found {
		return "", &domain.CredentialsMismatchError{Msg: credentialsMismatchMsg}
	}

	valid, err := a.passwordHasher.VerifyPassword(password, credentials.PasswordHash)
	if err != nil {
		return "", err
	}

	if !valid {
		return "", &domain.CredentialsMismatchError{Msg: credentialsMismatchMsg}
	}

	return a.tokenIssuer.IssueToken(a.secretKey, credentials.AccountID, credentials.Username, credentials.Role, tokenTimeLimit)
}
