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

	"github.com/tu-usuario/finanzas-erp/internal/application/auth"
	"github.com/tu-usuario/finanzas-erp/internal/application/inventory"
	"github.com/tu-usuario/finanzas-erp/internal/application/reports"
	"github.com/tu-usuario/finanzas-erp/internal/application/usecase"
	"github.com/tu-usuario/finanzas-erp/internal/application/voucher"
	"github.com/tu-usuario/finanzas-erp/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/finanzas-erp/internal/interfaces/http"
	"github.com/tu-usuario/finanzas-erp/pkg/config"
	"github.com/tu-usuario/finanzas-erp/pkg/logger"
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
		Str("base_currency", cfg.Ledger.BaseCurrencyID).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	commodityRepo := postgres.NewCommodityRepository(pool)
	rateRepo := postgres.NewExchangeRateRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	voucherRunner := postgres.NewTxRunner(pool)
	inventoryRunner := postgres.NewInventoryTxRunner(pool)

	voucherUC := voucher.NewUseCase(voucherRunner, txnRepo, cfg.Ledger.Precision)
	valuationUC := inventory.NewValuationUseCase(inventoryRunner, inventory.Config{
		BaseCurrencyID: cfg.Ledger.BaseCurrencyID,
		Precision:      cfg.Ledger.Precision,
	})
	accountUC := usecase.NewAccountUseCase(accountRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, cfg.Ledger.Precision)
	partnerUC := usecase.NewPartnerUseCase(partnerRepo)
	commodityUC := usecase.NewCommodityUseCase(commodityRepo, rateRepo)
	reportUC := reports.NewTrialBalanceUseCase(accountRepo, reportRepo, commodityRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Finanzas ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AccountUC:   accountUC,
		PartnerUC:   partnerUC,
		CommodityUC: commodityUC,
		ItemUC:      itemUC,
		VoucherUC:   voucherUC,
		ValuationUC: valuationUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
