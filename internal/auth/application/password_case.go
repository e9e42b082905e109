package application

import (
	"context"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/domain"
)

type PasswordChanger struct {
	credentialsRepository domain.CredentialsRepository
	passwordHasher        domain.PasswordHasher
}

func NewPasswordChanger(credentialsRepository domain.CredentialsRepository, passwordHasher domain.PasswordHasher) *PasswordChanger {
	return &PasswordChanger{
		credentialsRepository: credentialsRepository,
		passwordHasher:        passwordHasher,
	}
}

func (pc *PasswordChanger) ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error {
	credentials, found, err := pc.credentialsRepository.FindByAccountID(ctx, accountID)
	if err != nil {
		return err
	}

	if !found {
		return &domain.CredentialsMismatchError{Msg: credentialsMismatchMsg}
	}

	valid, err := pc.passwordHasher.VerifyPassword(oldPassword, credentials.PasswordHash)
	if err != nil {
		return err
	}

	if !valid {
		return &domain.CredentialsMismatchError{Msg: "invalid old password"}
	}

	hashedPassword, err := pc.passwordHasher.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return pc.credentialsRepository.UpdatePasswordHash(ctx, accountID, hashedPassword)
}
