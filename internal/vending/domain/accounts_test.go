package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Deposit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name            string
		account         Account
		amount          int64
		expectedBalance int64
		expectedErr     error
	}

	tests := []testCase{
		{
			name:            "buyer deposits valid coin",
			account:         Account{ID: 1, Role: RoleBuyer, Balance: 20},
			amount:          50,
			expectedBalance: 70,
		},
		{
			name:            "buyer deposits invalid coin",
			account:         Account{ID: 1, Role: RoleBuyer, Balance: 20},
			amount:          25,
			expectedBalance: 20,
			expectedErr:     &InvalidDenominationError{},
		},
		{
			name:            "seller cannot deposit",
			account:         Account{ID: 2, Role: RoleSeller},
			amount:          100,
			expectedBalance: 0,
			expectedErr:     &RoleViolationError{},
		},
		{
			name:            "seller with invalid coin gets role violation first",
			account:         Account{ID: 2, Role: RoleSeller},
			amount:          3,
			expectedBalance: 0,
			expectedErr:     &RoleViolationError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := tt.account
			balance, err := account.Deposit(tt.amount)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
			assert.Equal(t, tt.expectedBalance, account.Balance)
		})
	}
}

func TestAccount_DepositSequence(t *testing.T) {
	t.Parallel()

	account := Account{ID: 1, Role: RoleBuyer}
	coins := []int64{5, 100, 3, 20, 50, 0, 10, 7, 100}

	var expected int64
	for _, coin := range coins {
		_, err := account.Deposit(coin)
		if IsValidDenomination(coin) {
			require.NoError(t, err)
			expected += coin
		} else {
			require.ErrorIs(t, err, &InvalidDenominationError{})
		}
	}

	assert.Equal(t, expected, account.Balance)
	assert.Zero(t, account.Balance%5)
}

func TestAccount_ResetDeposit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name             string
		account          Account
		expectedRefunded int64
		expectedErr      error
	}

	tests := []testCase{
		{
			name:             "refunds whole balance",
			account:          Account{ID: 1, Role: RoleBuyer, Balance: 135},
			expectedRefunded: 135,
		},
		{
			name:        "nothing to refund",
			account:     Account{ID: 1, Role: RoleBuyer},
			expectedErr: &NothingToRefundError{},
		},
		{
			name:        "seller cannot reset",
			account:     Account{ID: 2, Role: RoleSeller, Balance: 0},
			expectedErr: &RoleViolationError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := tt.account
			refunded, err := account.ResetDeposit()

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, tt.account.Balance, account.Balance)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedRefunded, refunded)
			assert.Zero(t, account.Balance)
		})
	}
}

func TestAccount_Debit(t *testing.T) {
	t.Parallel()

	account := Account{ID: 1, Role: RoleBuyer, Balance: 40}

	err := account.Debit(55)
	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(15), insufficient.Shortfall)
	assert.Equal(t, int64(40), account.Balance)

	require.ErrorIs(t, account.Debit(-5), &InvalidArgumentsError{})

	require.NoError(t, account.Debit(40))
	assert.Zero(t, account.Balance)
}
