package http

import (
	"net/http"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/logging"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

type createProductRequestBody struct {
	ProductName     string `json:"productName" binding:"required"`
	Cost            int64  `json:"cost" binding:"required,gte=5,lte=1000000"`
	AmountAvailable *int   `json:"amountAvailable" binding:"required,gte=0"`
}

type updateProductRequestBody struct {
	ProductName     *string `json:"productName" binding:"omitempty,min=1"`
	Cost            *int64  `json:"cost" binding:"omitempty,gte=5,lte=1000000"`
	AmountAvailable *int    `json:"amountAvailable" binding:"omitempty,gte=0"`
}

type ProductsHandler struct {
	products ProductManager
	logger   logging.Logger
}

func NewProductsHandler(products ProductManager, logger logging.Logger) *ProductsHandler {
	return &ProductsHandler{
		products: products,
		logger:   logger,
	}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var body createProductRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	product, err := h.products.Create(ctx, actor, body.ProductName, body.Cost, *body.AmountAvailable)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("product created", "request_id", RequestID(c), "product_id", product.ID, "seller_id", actor)
	c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h *ProductsHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	productID, ok := pathID(c)
	if !ok {
		return
	}

	var body updateProductRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	product, err := h.products.Update(ctx, actor, productID, domain.ProductPatch{
		Name:            body.ProductName,
		Cost:            body.Cost,
		AmountAvailable: body.AmountAvailable,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("product updated", "request_id", RequestID(c), "product_id", product.ID, "actor_id", actor)
	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	productID, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	product, err := h.products.Delete(ctx, actor, productID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("product deleted", "request_id", RequestID(c), "product_id", product.ID, "actor_id", actor)
	c.JSON(http.StatusOK, toProductResponse(product))
}
