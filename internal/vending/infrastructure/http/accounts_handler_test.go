package http

import (
	"net/http"
	"testing"

	mocks "github.com/Ahmeddsamy/VendingMachine-Backend/gen/mocks/vendinghttp"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAccountsHandler_Update(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		body any

		prepareFn func(t *testing.T, accounts *mocks.MockAccountManager)

		expectedStatus int
		expectedBody   map[string]any
	}

	tests := []testCase{
		{
			name: "renamed",
			body: map[string]any{"username": "newname"},
			prepareFn: func(t *testing.T, accounts *mocks.MockAccountManager) {
				accounts.EXPECT().UpdateUsername(gomock.Any(), int64(1), int64(1), "newname").
					Return(domain.Account{ID: 1, Username: "newname", Role: domain.RoleBuyer, Balance: 20}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"id": float64(1), "username": "newname", "role": "buyer", "deposit": float64(20),
			},
		},
		{
			name: "taken",
			body: map[string]any{"username": "seller"},
			prepareFn: func(t *testing.T, accounts *mocks.MockAccountManager) {
				accounts.EXPECT().UpdateUsername(gomock.Any(), int64(1), int64(1), "seller").
					Return(domain.Account{}, &domain.UsernameTakenError{Msg: "username seller is already taken"})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing username",
			body:           map[string]any{},
			prepareFn:      func(t *testing.T, accounts *mocks.MockAccountManager) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			accounts := mocks.NewMockAccountManager(ctrl)
			tt.prepareFn(t, accounts)

			c, writer := newTestContext(http.MethodPut, "/api/users/1", tt.body, 1, idParam("1"))
			NewAccountsHandler(accounts, discardLogger).Update(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, decodeBody(writer))
			}
		})
	}
}

func TestAccountsHandler_Delete(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string

		prepareFn func(t *testing.T, accounts *mocks.MockAccountManager)

		expectedStatus int
	}

	tests := []testCase{
		{
			name: "deleted",
			prepareFn: func(t *testing.T, accounts *mocks.MockAccountManager) {
				accounts.EXPECT().Delete(gomock.Any(), int64(3), int64(3)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "still owns products",
			prepareFn: func(t *testing.T, accounts *mocks.MockAccountManager) {
				accounts.EXPECT().Delete(gomock.Any(), int64(3), int64(3)).
					Return(&domain.AccountHasProductsError{Products: 2})
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			accounts := mocks.NewMockAccountManager(ctrl)
			tt.prepareFn(t, accounts)

			c, writer := newTestContext(http.MethodDelete, "/api/users/3", nil, 3, idParam("3"))
			NewAccountsHandler(accounts, discardLogger).Delete(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}
