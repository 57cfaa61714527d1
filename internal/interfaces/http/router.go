package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brewpoint/pos-api/internal/application/auth"
	"github.com/brewpoint/pos-api/internal/application/catalog"
	"github.com/brewpoint/pos-api/internal/application/checkout"
	"github.com/brewpoint/pos-api/internal/application/inventory"
	"github.com/brewpoint/pos-api/internal/application/receipt"
	"github.com/brewpoint/pos-api/internal/application/reporting"
	"github.com/brewpoint/pos-api/internal/domain/entity"
	"github.com/brewpoint/pos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *catalog.UseCase
	Finalize  *checkout.FinalizeUseCase
	ReceiptUC *receipt.UseCase
	LedgerUC  *inventory.LedgerUseCase
	ReportUC  *reporting.UseCase
	OrderRepo repository.OrderRepository
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido)
	products := protected.Group("/products")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products.Get("/", catalogHandler.List)
	products.Get("/:id/options", catalogHandler.Options)

	// Órdenes (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.Finalize, deps.ReceiptUC, deps.OrderRepo)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.LedgerUC)
	reports.Get("/daily-sales", reportHandler.DailySales)
	reports.Get("/low-stock", reportHandler.LowStock)

	// Reposición de inventario (solo admin y manager)
	invGroup := protected.Group("/inventory", RequireRole(entity.RoleAdmin, entity.RoleManager))
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	invGroup.Post("/:productId/restock", inventoryHandler.Restock)
}
