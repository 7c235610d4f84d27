package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestorpro/gestor-api/internal/application/auth"
	"github.com/gestorpro/gestor-api/internal/application/billing"
	"github.com/gestorpro/gestor-api/internal/application/catalog"
	"github.com/gestorpro/gestor-api/internal/application/fulfillment"
	"github.com/gestorpro/gestor-api/internal/application/inventory"
	infrapdf "github.com/gestorpro/gestor-api/internal/infrastructure/pdf"
	"github.com/gestorpro/gestor-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestorpro/gestor-api/internal/interfaces/http"
	"github.com/gestorpro/gestor-api/pkg/config"
	"github.com/gestorpro/gestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	// Repositórios atados ao pool (leituras fora de transação); as escritas
	// transacionais recebem repositórios atados à tx pelo TxRunner.
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	serviceRepo := postgres.NewServiceRealizedRepository(pool)
	financeRepo := postgres.NewFinanceMovementRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	catalogRepo := postgres.NewCatalogServiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := inventory.NewStockLedger(txRunner)
	recorder := billing.NewRecorder()
	fulfillmentUC := fulfillment.NewUseCase(txRunner, ledger, recorder, serviceRepo, clientRepo, catalogRepo)

	receiptGenerator := infrapdf.NewReceiptGenerator(cfg.App.Name)
	receiptUC := fulfillment.NewReceiptUseCase(serviceRepo, productRepo, receiptGenerator)

	productUC := catalog.NewProductUseCase(productRepo, movementRepo, ledger)
	clientUC := catalog.NewClientUseCase(clientRepo)
	serviceUC := catalog.NewServiceUseCase(catalogRepo)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/openapi.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:        ledger,
		FulfillmentUC: fulfillmentUC,
		ReceiptUC:     receiptUC,
		ProductUC:     productUC,
		ClientUC:      clientUC,
		ServiceUC:     serviceUC,
		AuthUC:        authUC,
		FinanceRepo:   financeRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
