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

	"github.com/jhoicas/Constructora-api/internal/application/progress"
	"github.com/jhoicas/Constructora-api/internal/application/report"
	infrapdf "github.com/jhoicas/Constructora-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Constructora-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Constructora-api/internal/interfaces/http"
	"github.com/jhoicas/Constructora-api/pkg/config"
	"github.com/jhoicas/Constructora-api/pkg/logger"
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
		Int("utc_offset_minutes", cfg.Report.UTCOffsetMinutes).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	companyRepo := postgres.NewCompanyRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	pettyCashRepo := postgres.NewPettyCashRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	villaRepo := postgres.NewVillaRepository(pool)
	contractRepo := postgres.NewLabourContractRepository(pool)

	// Motor de reportes: ventanas de día a offset fijo + agregadores por fuente
	windows := report.NewTimeWindowResolver(cfg.Report.UTCOffsetMinutes)
	labourAgg := report.NewLabourCostAggregator(attendanceRepo)
	inventoryAgg := report.NewInventoryMovementAggregator(movementRepo)
	expenseAgg := report.NewExpenseAggregator(expenseRepo)
	pettyCashAgg := report.NewPettyCashAggregator(pettyCashRepo)
	collectionsAgg := report.NewCollectionsAggregator(paymentRepo)

	dailyBuilder := report.NewDailyReportBuilder(windows, expenseAgg, pettyCashAgg, labourAgg, collectionsAgg)
	rangeOrchestrator := report.NewRangeReportOrchestrator(windows, dailyBuilder)
	summaryUC := report.NewSummaryUseCase(windows, labourAgg, pettyCashAgg, expenseAgg, collectionsAgg, inventoryAgg)
	progressUC := progress.NewUseCase(villaRepo, contractRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()

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
		Title:    "Constructora API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Windows:     windows,
		DailyReport: dailyBuilder,
		RangeReport: rangeOrchestrator,
		Summary:     summaryUC,
		Progress:    progressUC,
		PDF:         pdfGenerator,
		Companies:   companyRepo,
		JWTSecret:   cfg.JWT.Secret,
		Logger:      log,
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
