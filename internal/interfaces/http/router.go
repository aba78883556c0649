package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chichilu/closet-api/internal/application/analytics"
	"github.com/chichilu/closet-api/internal/application/auth"
	"github.com/chichilu/closet-api/internal/application/catalog"
	"github.com/chichilu/closet-api/internal/application/customer"
	"github.com/chichilu/closet-api/internal/application/order"
	"github.com/chichilu/closet-api/internal/application/product"
	"github.com/chichilu/closet-api/internal/application/stock"
	"github.com/chichilu/closet-api/internal/application/variant"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ProductUC    *product.UseCase
	VariantUC    *variant.UseCase
	StockUC      *stock.Service
	StockHistory *stock.History
	OrderUC      *order.UseCase
	CustomerUC   *customer.UseCase
	CatalogUC    *catalog.UseCase
	DashboardUC  *analytics.UseCase
	ReceiptPDF   ReceiptGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/find", productHandler.FindByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/adjust-stock", productHandler.AdjustStock)

	// Variants (protegido)
	variants := protected.Group("/variants")
	variantHandler := NewVariantHandler(deps.VariantUC, deps.StockUC)
	variants.Post("/", variantHandler.Create)
	variants.Post("/bulk", variantHandler.CreateBulk)
	variants.Get("/by-product/:id", variantHandler.ListByProduct)
	variants.Put("/:id", variantHandler.Update)
	variants.Delete("/:id", variantHandler.Delete)
	variants.Post("/:id/restore-stock", variantHandler.RestoreStock)

	// Stock (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.StockHistory)
	stockGroup.Post("/import", stockHandler.Import)
	stockGroup.Post("/export", stockHandler.Export)
	stockGroup.Get("/history", stockHandler.History)
	stockGroup.Get("/history/variant/:id", stockHandler.HistoryByVariant)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptPDF)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id/status", orderHandler.GetStatus)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Put("/:id/tracking", orderHandler.UpdateTracking)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Options (protegido): tallas y colores para el formulario de variantes
	options := protected.Group("/options")
	optionHandler := NewOptionHandler(deps.CatalogUC)
	options.Get("/sizes", optionHandler.ListSizes)
	options.Post("/sizes", optionHandler.AddSize)
	options.Get("/colors", optionHandler.ListColors)
	options.Post("/colors", optionHandler.AddColor)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/top-brands", dashboardHandler.TopBrands)
	dashboard.Get("/top-products", dashboardHandler.TopProducts)
}
