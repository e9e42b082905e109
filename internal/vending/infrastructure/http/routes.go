package http

import "github.com/gin-gonic/gin"

type Handlers struct {
	Auth     *AuthHandler
	Machine  *MachineHandler
	Products *ProductsHandler
	Accounts *AccountsHandler
	Health   *HealthHandler
}

func RegisterRoutes(router gin.IRouter, handlers Handlers, authMiddleware gin.HandlerFunc) {
	router.GET("/health", handlers.Health.Check)

	api := router.Group("/api")
	{
		api.POST("/auth/signin", handlers.Auth.SignIn)

		authenticated := api.Group("/", authMiddleware)
		{
			authenticated.POST("/deposit", handlers.Machine.Deposit)
			authenticated.POST("/reset", handlers.Machine.Reset)
			authenticated.POST("/buy", handlers.Machine.Buy)

			authenticated.POST("/products", handlers.Products.Create)
			authenticated.PATCH("/products/:"+IDKey, handlers.Products.Update)
			authenticated.DELETE("/products/:"+IDKey, handlers.Products.Delete)

			authenticated.PUT("/users/:"+IDKey, handlers.Accounts.Update)
			authenticated.PATCH("/users/:"+IDKey+"/password", handlers.Auth.ChangePassword)
			authenticated.DELETE("/users/:"+IDKey, handlers.Accounts.Delete)
		}
	}
}
