package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/finanzas-erp/internal/application/auth"
	"github.com/tu-usuario/finanzas-erp/internal/application/inventory"
	"github.com/tu-usuario/finanzas-erp/internal/application/reports"
	"github.com/tu-usuario/finanzas-erp/internal/application/usecase"
	"github.com/tu-usuario/finanzas-erp/internal/application/voucher"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AccountUC   *usecase.AccountUseCase
	PartnerUC   *usecase.PartnerUseCase
	CommodityUC *usecase.CommodityUseCase
	ItemUC      *usecase.ItemUseCase
	VoucherUC   *voucher.UseCase
	ValuationUC *inventory.ValuationUseCase
	ReportUC    *reports.TrialBalanceUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Plan de cuentas
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Delete("/:id", accountHandler.Delete)

	// Terceros
	partners := protected.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	partners.Get("/", partnerHandler.List)
	partners.Post("/", partnerHandler.Create)
	partners.Put("/:id", partnerHandler.Update)

	// Monedas y tasas
	commodityHandler := NewCommodityHandler(deps.CommodityUC)
	commodities := protected.Group("/commodities")
	commodities.Get("/", commodityHandler.List)
	commodities.Post("/", commodityHandler.Create)
	protected.Get("/exchange-rates", commodityHandler.ListRates)

	// Artículos
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)

	// Comprobantes manuales
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.VoucherUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Submit)

	// Inventario: entradas y salidas
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ValuationUC)
	invGroup.Post("/inbound", inventoryHandler.Inbound)
	invGroup.Post("/outbound", inventoryHandler.Outbound)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/trial-balance", reportHandler.TrialBalance)
}
