package application

import (
	"context"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/domain"
)

// Provisioner creates accounts on behalf of an operator.
type Provisioner struct {
	credentialsRepository domain.CredentialsRepository
	passwordHasher        domain.PasswordHasher
}

func NewProvisioner(credentialsRepository domain.CredentialsRepository, passwordHasher domain.PasswordHasher) *Provisioner {
	return &Provisioner{
		credentialsRepository: credentialsRepository,
		passwordHasher:        passwordHasher,
	}
}

func (p *Provisioner) Provision(ctx context.Context, username, password, role string) (domain.Credentials, error) {
	hashedPassword, err := p.passwordHasher.HashPassword(password)
	if err != nil {
		return domain.Credentials{}, err
	}

	return p.credentialsRepository.CreateAccount(ctx, username, hashedPassword, role)
}
