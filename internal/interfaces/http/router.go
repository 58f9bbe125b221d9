package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/wellcomputer-pos/internal/application/analytics"
	"github.com/jhoicas/wellcomputer-pos/internal/application/auth"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/internal/application/sales"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
	"github.com/jhoicas/wellcomputer-pos/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	StoreUC      *usecase.StoreUseCase
	ProductUC    *usecase.ProductUseCase
	UserUC       *usecase.UserUseCase
	BackupUC     *usecase.BackupUseCase
	AssistantUC  *usecase.AssistantUseCase
	RecordSale   *sales.RecordSaleUseCase
	Messages     *sales.ProcessMessageUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	PDFRenderer  ports.ReportRenderer
	XLSXRenderer ports.ReportRenderer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con sesión abierta)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Get("/auth/session", authHandler.Session)
	protected.Post("/auth/logout", authHandler.Logout)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.PDFRenderer, deps.XLSXRenderer)
	protected.Get("/dashboard/summary", RequireArea(access.AreaDashboard), dashboardHandler.GetSummary)

	// Stores
	stores := protected.Group("/stores", RequireArea(access.AreaStores))
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Products
	products := protected.Group("/products", RequireArea(access.AreaProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/brands", productHandler.Brands)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/duplicate", productHandler.Duplicate)
	products.Patch("/:id/stock", productHandler.AdjustStock)
	products.Put("/:id/stock", productHandler.SetStock)
	products.Delete("/:id", productHandler.Delete)

	// Transactions
	transactions := protected.Group("/transactions", RequireArea(access.AreaTransactions))
	transactionHandler := NewTransactionHandler(deps.RecordSale, deps.ProductUC, deps.DashboardUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/form-options", transactionHandler.FormOptions)

	// Users
	users := protected.Group("/users", RequireArea(access.AreaUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/roles", userHandler.Roles)
	users.Get("/:id", userHandler.GetByID)
	users.Delete("/:id", userHandler.Delete)

	// WhatsApp
	whatsapp := protected.Group("/whatsapp", RequireArea(access.AreaWhatsApp))
	messageHandler := NewMessageHandler(deps.Messages)
	whatsapp.Post("/messages", messageHandler.Process)
	whatsapp.Get("/logs", messageHandler.Logs)

	// Reports
	reports := protected.Group("/reports", RequireArea(access.AreaReports))
	reports.Get("/", dashboardHandler.GetReport)
	reports.Get("/export.pdf", dashboardHandler.ExportPDF)
	reports.Get("/export.xlsx", dashboardHandler.ExportXLSX)

	// Backup
	backup := protected.Group("/backup", RequireArea(access.AreaBackup))
	backupHandler := NewBackupHandler(deps.BackupUC)
	backup.Get("/export", backupHandler.Export)
	backup.Post("/import", backupHandler.Import)
	backup.Post("/archive", backupHandler.Archive)
	backup.Get("/archive", backupHandler.ListArchive)

	// Assistant (cualquier usuario autenticado)
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	protected.Post("/assistant/ask", assistantHandler.Ask)
}
