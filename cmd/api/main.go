package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/wellcomputer-pos/internal/application/analytics"
	"github.com/jhoicas/wellcomputer-pos/internal/application/auth"
	"github.com/jhoicas/wellcomputer-pos/internal/application/ports"
	"github.com/jhoicas/wellcomputer-pos/internal/application/sales"
	"github.com/jhoicas/wellcomputer-pos/internal/application/usecase"
	infraai "github.com/jhoicas/wellcomputer-pos/internal/infrastructure/ai"
	"github.com/jhoicas/wellcomputer-pos/internal/infrastructure/file"
	"github.com/jhoicas/wellcomputer-pos/internal/infrastructure/memory"
	"github.com/jhoicas/wellcomputer-pos/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/wellcomputer-pos/internal/infrastructure/redis"
	"github.com/jhoicas/wellcomputer-pos/internal/infrastructure/report"
	httpRouter "github.com/jhoicas/wellcomputer-pos/internal/interfaces/http"
	"github.com/jhoicas/wellcomputer-pos/pkg/config"
	"github.com/jhoicas/wellcomputer-pos/pkg/logger"
	"github.com/jhoicas/wellcomputer-pos/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ai_provider", cfg.AI.Provider).
		Str("snapshot_backend", cfg.Snapshot.Backend).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()

	// Estado en memoria con los datos iniciales; los passwords semilla se guardan hasheados.
	seed := memory.SeedDataset(time.Now().UTC())
	if err := usecase.HashPasswords(seed.Users, bcrypt.DefaultCost); err != nil {
		log.Fatal().Err(err).Msg("hash de passwords semilla")
	}
	state := memory.NewState(seed)

	storeRepo := memory.NewStoreRepository(state)
	productRepo := memory.NewProductRepository(state)
	userRepo := memory.NewUserRepository(state)
	ledger := memory.NewTransactionRepository(state)
	txRunner := memory.NewTxRunner(state)

	// Marcadores de sesión: Redis si está configurado, si no en memoria.
	var sessions ports.SessionStore
	if cfg.Redis.Addr != "" {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		sessions = infraredis.NewSessionStore(client, log.Component("sessions"))
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: sesiones en memoria, se pierden al reiniciar")
		sessions = memory.NewSessionStore()
	}

	// Archivo de backups
	var archive ports.SnapshotStore
	switch cfg.Snapshot.Backend {
	case "file":
		store, err := file.NewSnapshotStore(cfg.Snapshot.Dir, log.Component("snapshots"))
		if err != nil {
			log.Fatal().Err(err).Msg("archivo de backups")
		}
		archive = store
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Snapshot.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		store := postgres.NewSnapshotStore(pool, log.Component("snapshots"))
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de backups")
		}
		archive = store
	}

	backupUC := usecase.NewBackupUseCase(state, archive, log.Component("backup"))
	if cfg.Snapshot.RestoreOnStart && archive != nil {
		restored, err := backupUC.RestoreLatest(ctx)
		switch {
		case err != nil:
			log.Fatal().Err(err).Msg("restaurar último backup")
		case restored:
			log.Info().Msg("estado restaurado desde el último backup")
		default:
			log.Info().Msg("archivo de backups vacío, se usan los datos iniciales")
		}
	}

	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	salesMetrics := metrics.NewSalesMetrics(registry)

	userUC := usecase.NewUserUseCase(userRepo, log.Component("users"))
	productUC := usecase.NewProductUseCase(productRepo, storeRepo, log.Component("products"))
	storeUC := usecase.NewStoreUseCase(storeRepo, log.Component("stores"))
	dashboardUC := appanalytics.NewDashboardUseCase(state, ledger, cfg.Business.LowStockThreshold, log.Component("dashboard"))
	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, salesMetrics, log.Component("sales"))
	messagesUC := sales.NewProcessMessageUseCase(llm, productRepo, recordSaleUC, sales.MessageConfig{
		Timeout:          cfg.AI.Timeout,
		FailureThreshold: cfg.AI.FailureThreshold,
		Cooldown:         cfg.AI.Cooldown,
		RatePerSecond:    cfg.AI.RatePerSecond,
		LogLimit:         cfg.Business.WhatsAppLogLimit,
	}, salesMetrics, log.Component("messages"))
	assistantUC := usecase.NewAssistantUseCase(llm, productRepo, ledger, cfg.AI.Timeout, log.Component("assistant"))
	authUC := auth.NewAuthUseCase(userUC, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Component("auth"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Well Computer POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		StoreUC:      storeUC,
		ProductUC:    productUC,
		UserUC:       userUC,
		BackupUC:     backupUC,
		AssistantUC:  assistantUC,
		RecordSale:   recordSaleUC,
		Messages:     messagesUC,
		DashboardUC:  dashboardUC,
		PDFRenderer:  report.NewPDFRenderer(),
		XLSXRenderer: report.NewXLSXRenderer(),
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
