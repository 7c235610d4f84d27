package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestor-api/internal/application/auth"
	"github.com/gestorpro/gestor-api/internal/application/catalog"
	"github.com/gestorpro/gestor-api/internal/application/fulfillment"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	"github.com/gestorpro/gestor-api/internal/domain/entity"
	"github.com/gestorpro/gestor-api/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Ledger        *inventory.StockLedger
	FulfillmentUC *fulfillment.UseCase
	ReceiptUC     *fulfillment.ReceiptUseCase
	ProductUC     *catalog.ProductUseCase
	ClientUC      *catalog.ClientUseCase
	ServiceUC     *catalog.ServiceUseCase
	AuthUC        *auth.UseCase
	FinanceRepo   repository.FinanceMovementRepository
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Deactivate)
	products.Post("/:id/adjust-stock", productHandler.AdjustStock)
	products.Get("/:id/movements", productHandler.Movements)

	// Razão de estoque
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	invGroup.Post("/movements", inventoryHandler.ApplyMovements)

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)

	// Catálogo de serviços
	catalogGroup := protected.Group("/catalog-services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	catalogGroup.Post("/", serviceHandler.Create)
	catalogGroup.Get("/", serviceHandler.List)
	catalogGroup.Get("/:id", serviceHandler.GetByID)
	catalogGroup.Put("/:id", serviceHandler.Update)
	catalogGroup.Delete("/:id", RequireRole(entity.RoleAdmin), serviceHandler.Deactivate)

	// Serviços realizados
	realized := protected.Group("/services-realized")
	fulfillmentHandler := NewFulfillmentHandler(deps.FulfillmentUC, deps.ReceiptUC)
	realized.Post("/", fulfillmentHandler.Create)
	realized.Get("/", fulfillmentHandler.List)
	realized.Get("/:id", fulfillmentHandler.GetByID)
	realized.Put("/:id", fulfillmentHandler.Update)
	realized.Delete("/:id", RequireRole(entity.RoleAdmin), fulfillmentHandler.Delete)
	realized.Post("/:id/settle", fulfillmentHandler.Settle)
	realized.Get("/:id/receipt", fulfillmentHandler.Receipt)

	// Financeiro
	finance := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceRepo)
	finance.Get("/movements", financeHandler.List)
}
