package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/chichilu/closet-api/internal/application/analytics"
	"github.com/chichilu/closet-api/internal/application/auth"
	"github.com/chichilu/closet-api/internal/application/catalog"
	"github.com/chichilu/closet-api/internal/application/customer"
	"github.com/chichilu/closet-api/internal/application/order"
	"github.com/chichilu/closet-api/internal/application/product"
	"github.com/chichilu/closet-api/internal/application/stock"
	"github.com/chichilu/closet-api/internal/application/variant"
	infrapdf "github.com/chichilu/closet-api/internal/infrastructure/pdf"
	"github.com/chichilu/closet-api/internal/infrastructure/postgres"
	httpRouter "github.com/chichilu/closet-api/internal/interfaces/http"
	"github.com/chichilu/closet-api/pkg/config"
	"github.com/chichilu/closet-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	optionRepo := postgres.NewOptionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewService(txRunner, variantRepo, productRepo)
	stockHistory := stock.NewHistory(movementRepo, variantRepo)
	productUC := product.NewUseCase(txRunner, productRepo, variantRepo)
	variantUC := variant.NewUseCase(txRunner, productRepo, variantRepo)
	orderUC := order.NewUseCase(txRunner, stockUC, customerRepo, orderRepo)
	customerUC := customer.NewUseCase(customerRepo)
	catalogUC := catalog.NewUseCase(optionRepo)
	dashboardUC := analytics.NewUseCase(analyticsRepo)
	authUC := auth.NewUseCase(cfg.Admin.PasswordHash, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	receiptPDF := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Closet API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		VariantUC:    variantUC,
		StockUC:      stockUC,
		StockHistory: stockHistory,
		OrderUC:      orderUC,
		CustomerUC:   customerUC,
		CatalogUC:    catalogUC,
		DashboardUC:  dashboardUC,
		ReceiptPDF:   receiptPDF,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
