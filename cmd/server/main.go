package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	locationapp "github.com/sistemaempresa/backend/internal/application/location"
	partnerapp "github.com/sistemaempresa/backend/internal/application/partner"
	"github.com/sistemaempresa/backend/internal/infrastructure/config"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"github.com/sistemaempresa/backend/internal/infrastructure/migration"
	"github.com/sistemaempresa/backend/internal/infrastructure/persistence"
	"github.com/sistemaempresa/backend/internal/infrastructure/persistence/models"
	"github.com/sistemaempresa/backend/internal/infrastructure/telemetry"
	"github.com/sistemaempresa/backend/internal/interfaces/http/handler"
	"github.com/sistemaempresa/backend/internal/interfaces/http/middleware"
	"github.com/sistemaempresa/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/sistemaempresa/backend/docs"
)

//	@title			SistemaEmpresa API
//	@version		1.0
//	@description	Cadastro de países, estados e cidades e dos clientes, fornecedores, funcionários e transportadoras que os referenciam.

//	@contact.name	SistemaEmpresa
//	@contact.url	https://github.com/sistemaempresa/backend

//	@host		localhost:8080
//	@BasePath	/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Service:    cfg.App.Name,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SistemaEmpresa backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database_driver", cfg.Database.Driver),
	)

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithDriver(cfg.Database.Driver))

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:         true,
			LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
			DBSystem:        telemetry.DBSystemForDriver(cfg.Database.Driver),
		}, log)
		if err := plugin.RegisterOtelGorm(db.DB); err != nil {
			log.Fatal("Failed to register database tracing", zap.Error(err))
		}
	}

	if cfg.Database.AutoMigrate {
		if err := migrateSchema(cfg, db, log); err != nil {
			log.Fatal("Failed to migrate database schema", zap.Error(err))
		}
	}

	// Repositories
	countryRepo := persistence.NewGormCountryRepository(db.DB)
	stateRepo := persistence.NewGormStateRepository(db.DB)
	cityRepo := persistence.NewGormCityRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	transporterRepo := persistence.NewGormTransporterRepository(db.DB)

	// Services
	countryService := locationapp.NewCountryService(countryRepo)
	stateService := locationapp.NewStateService(stateRepo, countryRepo)
	cityService := locationapp.NewCityService(cityRepo, stateRepo)
	clientService := partnerapp.NewClientService(clientRepo, cityRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo, cityRepo)
	employeeService := partnerapp.NewEmployeeService(employeeRepo, cityRepo)
	transporterService := partnerapp.NewTransporterService(transporterRepo, cityRepo)

	handlers := router.Handlers{
		Country:     handler.NewCountryHandler(countryService),
		State:       handler.NewStateHandler(stateService),
		City:        handler.NewCityHandler(cityService),
		Client:      handler.NewClientHandler(clientService),
		Supplier:    handler.NewSupplierHandler(supplierService),
		Employee:    handler.NewEmployeeHandler(employeeService),
		Transporter: handler.NewTransporterHandler(transporterService),
		Health:      handler.NewHealthHandler(db, telemetry.ServiceVersion),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := router.NewEngine(log, handlers, router.Options{
		ServiceName:    cfg.App.Name,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		CORS: middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
			MaxAge:       12 * time.Hour,
		},
		MaxBodySize: cfg.HTTP.MaxBodySize,
		Tracing:     tracerProvider.IsEnabled(),
		Metrics:     cfg.Metrics.Enabled,
		MetricsPath: cfg.Metrics.Path,
		Swagger:     cfg.Swagger.Enabled,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// migrateSchema brings the schema up to date on startup. PostgreSQL runs the
// SQL migrations; sqlite is created from the GORM models.
func migrateSchema(cfg *config.Config, db *persistence.Database, log *zap.Logger) error {
	if cfg.Database.Driver == config.DriverSQLite {
		log.Info("Creating sqlite schema from models")
		return db.DB.AutoMigrate(models.All()...)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, cfg.Database.MigrationsPath, log)
	if err != nil {
		return err
	}
	return m.Up()
}
