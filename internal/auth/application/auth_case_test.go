package application

import (
	"testing"
	"time"

	authmocks "github.com/Ahmeddsamy/VendingMachine-Backend/gen/mocks/auth"
	jwtmocks "github.com/Ahmeddsamy/VendingMachine-Backend/gen/mocks/jwt"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/domain"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/jwt"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthenticator_SignIn(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name               string
		username, password string
		secretKey          string

		prepareFn func(t *testing.T, ctrl *gomock.Controller) (domain.CredentialsRepository, domain.PasswordHasher, jwt.TokenIssuer)

		expectedToken string
		expectedErr   error
	}

	tests := []testCase{
		{
			name:      "correct password",
			username:  "existinguser",
			password:  "correctpassword",
			secretKey: "secret",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.CredentialsRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				credentialsRepo := authmocks.NewMockCredentialsRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
				tokenIssuer := jwtmocks.NewMockTokenIssuer(ctrl)

				credentialsRepo.EXPECT().FindByUsername(gomock.Any(), "existinguser").Return(domain.Credentials{
					AccountID:    2,
					Username:     "existinguser",
					PasswordHash: "stored_hash",
					Role:         "buyer",
				}, true, nil)
				passwordHasher.EXPECT().VerifyPassword("correctpassword", "stored_hash").Return(true, nil)
				tokenIssuer.EXPECT().IssueToken([]byte("secret"), int64(2), "existinguser", "buyer", time.Hour).Return("jwt_token", nil)

				return credentialsRepo, passwordHasher, tokenIssuer
			},
			expectedToken: "jwt_token",
		},
		{
			name:      "incorrect password",
			username:  "existinguser",
			password:  "wrongpassword",
			secretKey: "secret",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.CredentialsRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				credentialsRepo := authmocks.NewMockCredentialsRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
				tokenIssuer := jwtmocks.NewMockTokenIssuer(ctrl)

				credentialsRepo.EXPECT().FindByUsername(gomock.Any(), "existinguser").Return(domain.Credentials{
					AccountID:    2,
					Username:     "existinguser",
					PasswordHash: "stored_hash",
					Role:         "buyer",
				}, true, nil)
				passwordHasher.EXPECT().VerifyPassword("wrongpassword", "stored_hash").Return(false, nil)

				return credentialsRepo, passwordHasher, tokenIssuer
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:      "unknown username",
			username:  "ghost",
			password:  "whatever",
			secretKey: "secret",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.CredentialsRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				credentialsRepo := authmocks.NewMockCredentialsRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
				tokenIssuer := jwtmocks.NewMockTokenIssuer(ctrl)

				credentialsRepo.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(domain.Credentials{}, false, nil)

				return credentialsRepo, passwordHasher, tokenIssuer
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:      "repository error",
			username:  "existinguser",
			password:  "password",
			secretKey: "secret",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.CredentialsRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				credentialsRepo := authmocks.NewMockCredentialsRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
				tokenIssuer := jwtmocks.NewMockTokenIssuer(ctrl)

				credentialsRepo.EXPECT().FindByUsername(gomock.Any(), "existinguser").Return(domain.Credentials{}, false, assert.AnError)

				return credentialsRepo, passwordHasher, tokenIssuer
			},
			expectedErr: assert.AnError,
		},
		{
			name:      "error issuing token",
			username:  "existinguser",
			password:  "correctpassword",
			secretKey: "secret",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.CredentialsRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				credentialsRepo := authmocks.NewMockCredentialsRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
				tokenIssuer := jwtmocks.NewMockTokenIssuer(ctrl)

				credentialsRepo.EXPECT().FindByUsername(gomock.Any(), "existinguser").Return(domain.Credentials{
					AccountID:    2,
					Username:     "existinguser",
					PasswordHash: "stored_hash",
					Role:         "buyer",
				}, true, nil)
				passwordHasher.EXPECT().VerifyPassword("correctpassword", "stored_hash").Return(true, nil)
				tokenIssuer.EXPECT().IssueToken([]byte("secret"), int64(2), "existinguser", "buyer", time.Hour).Return("", assert.AnError)

				return credentialsRepo, passwordHasher, tokenIssuer
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			credentialsRepoMock, passwordHasherMock, tokenIssuerMock := tc.prepareFn(t, ctrl)
			authenticator := NewAuthenticator(credentialsRepoMock, passwordHasherMock, tokenIssuerMock, tc.secretKey)

			token, err := authenticator.SignIn(t.Context(), tc.username, tc.password)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedToken, token)
			}
		})
	}
}
