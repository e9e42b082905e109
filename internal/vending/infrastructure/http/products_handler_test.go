package http

import (
	"net/http"
	"testing"

	mocks "github.com/Ahmeddsamy/VendingMachine-Backend/gen/mocks/vendinghttp"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestProductsHandler_Create(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		body any

		prepareFn func(t *testing.T, products *mocks.MockProductManager)

		expectedStatus int
		expectedBody   map[string]any
	}

	tests := []testCase{
		{
			name: "created",
			body: map[string]any{"productName": "cola", "cost": 50, "amountAvailable": 0},
			prepareFn: func(t *testing.T, products *mocks.MockProductManager) {
				products.EXPECT().Create(gomock.Any(), int64(3), "cola", int64(50), 0).
					Return(domain.Product{ID: 10, Name: "cola", Cost: 50, SellerID: 3}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: map[string]any{
				"id": float64(10), "productName": "cola", "cost": float64(50),
				"amountAvailable": float64(0), "sellerId": float64(3),
			},
		},
		{
			name: "buyer forbidden",
			body: map[string]any{"productName": "cola", "cost": 50, "amountAvailable": 1},
			prepareFn: func(t *testing.T, products *mocks.MockProductManager) {
				products.EXPECT().Create(gomock.Any(), int64(3), "cola", int64(50), 1).
					Return(domain.Product{}, &domain.RoleViolationError{Msg: "only sellers can add products"})
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "cost too low",
			body:           map[string]any{"productName": "gum", "cost": 2, "amountAvailable": 1},
			prepareFn:      func(t *testing.T, products *mocks.MockProductManager) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "cost too high",
			body:           map[string]any{"productName": "gold", "cost": int64(4611686018427387905), "amountAvailable": 4},
			prepareFn:      func(t *testing.T, products *mocks.MockProductManager) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing amount",
			body:           map[string]any{"productName": "gum", "cost": 5},
			prepareFn:      func(t *testing.T, products *mocks.MockProductManager) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			products := mocks.NewMockProductManager(ctrl)
			tt.prepareFn(t, products)

			c, writer := newTestContext(http.MethodPost, "/api/products", tt.body, 3, nil)
			NewProductsHandler(products, discardLogger).Create(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, decodeBody(writer))
			}
		})
	}
}

func TestProductsHandler_Update(t *testing.T) {
	t.Parallel()

	cost := int64(65)

	type testCase struct {
		name   string
		params gin.Params
		body   any

		prepareFn func(t *testing.T, products *mocks.MockProductManager)

		expectedStatus int
		expectedBody   map[string]any
	}

	tests := []testCase{
		{
			name:   "partial update",
			params: idParam("10"),
			body:   map[string]any{"cost": 65},
			prepareFn: func(t *testing.T, products *mocks.MockProductManager) {
				products.EXPECT().Update(gomock.Any(), int64(3), int64(10), domain.ProductPatch{Cost: &cost}).
					Return(domain.Product{ID: 10, Name: "cola", Cost: 65, AmountAvailable: 5, SellerID: 3}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "permission denied hides details",
			params: idParam("10"),
			body:   map[string]any{"cost": 65},
			prepareFn: func(t *testing.T, products *mocks.MockProductManager) {
				products.EXPECT().Update(gomock.Any(), int64(3), int64(10), gomock.Any()).
					Return(domain.Product{}, &domain.PermissionDeniedError{Msg: "product 10 belongs to seller 4"})
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   map[string]any{"errors": "permission denied"},
		},
		{
			name:           "invalid id",
			params:         idParam("abc"),
			body:           map[string]any{"cost": 65},
			prepareFn:      func(t *testing.T, products *mocks.MockProductManager) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "cost too high",
			params:         idParam("10"),
			body:           map[string]any{"cost": 1000005},
			prepareFn:      func(t *testing.T, products *mocks.MockProductManager) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative amount",
			params:         idParam("10"),
			body:           map[string]any{"amountAvailable": -1},
			prepareFn:      func(t *testing.T, products *mocks.MockProductManager) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			products := mocks.NewMockProductManager(ctrl)
			tt.prepareFn(t, products)

			c, writer := newTestContext(http.MethodPatch, "/api/products/x", tt.body, 3, tt.params)
			NewProductsHandler(products, discardLogger).Update(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, tt.expectedBody, decodeBody(writer))
			}
		})
	}
}

func TestProductsHandler_Delete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	products := mocks.NewMockProductManager(ctrl)
	products.EXPECT().Delete(gomock.Any(), int64(3), int64(10)).
		Return(domain.Product{ID: 10, Name: "cola", Cost: 50, AmountAvailable: 5, SellerID: 3}, nil)

	c, writer := newTestContext(http.MethodDelete, "/api/products/10", nil, 3, idParam("10"))
	NewProductsHandler(products, discardLogger).Delete(c)

	assert.Equal(t, http.StatusOK, writer.Code)
	assert.Equal(t, "cola", decodeBody(writer)["productName"])
}
