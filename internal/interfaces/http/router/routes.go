package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"github.com/sistemaempresa/backend/internal/interfaces/http/handler"
	"github.com/sistemaempresa/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers bundles the handlers served by the engine
type Handlers struct {
	Country     *handler.CountryHandler
	State       *handler.StateHandler
	City        *handler.CityHandler
	Client      *handler.ClientHandler
	Supplier    *handler.SupplierHandler
	Employee    *handler.EmployeeHandler
	Transporter *handler.TransporterHandler
	Health      *handler.HealthHandler
}

// Options controls the middleware chain and the non-API endpoints
type Options struct {
	ServiceName    string
	TrustedProxies []string
	CORS           middleware.CORSConfig
	MaxBodySize    int64
	Tracing        bool
	Metrics        bool
	MetricsPath    string
	Swagger        bool
}

// NewEngine builds the gin engine with the full middleware chain, the
// health, metrics and swagger endpoints, and every /api route.
func NewEngine(log *zap.Logger, h Handlers, opts Options) *gin.Engine {
	engine := gin.New()

	if len(opts.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(opts.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Tracing wraps the access logger so request logs carry trace IDs
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: opts.ServiceName,
		Enabled:     opts.Tracing,
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log))
	if opts.Metrics {
		engine.Use(middleware.Metrics(opts.ServiceName))
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(opts.CORS))

	engine.GET("/health", h.Health.Live)
	engine.GET("/health/ready", h.Health.Ready)

	if opts.Metrics {
		metricsPath := opts.MetricsPath
		if metricsPath == "" {
			metricsPath = "/metrics"
		}
		engine.GET(metricsPath, middleware.MetricsHandler())
	}

	if opts.Swagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := NewRouter(engine).Use(middleware.BodyLimit(opts.MaxBodySize))
	for _, group := range APIGroups(h) {
		r.Register(group)
	}
	r.Setup()

	return engine
}

// APIGroups returns the route groups mounted under /api
func APIGroups(h Handlers) []*DomainGroup {
	countries := NewDomainGroup("pais", "/Pais")
	countries.GET("", h.Country.List).
		GET("/:id", h.Country.GetByID).
		POST("", h.Country.Create).
		PUT("/:id", h.Country.Update).
		DELETE("/:id", h.Country.Delete).
		POST("/ExcluirForcado/:id", h.Country.ForceDelete)

	states := NewDomainGroup("estado", "/Estado")
	states.GET("", h.State.List).
		GET("/detalhado", h.State.ListDetailed).
		GET("/porPais/:paisId", h.State.ListByCountry).
		GET("/:id", h.State.GetByID).
		POST("", h.State.Create).
		PUT("/:id", h.State.Update).
		DELETE("/:id", h.State.Delete).
		POST("/ExcluirForcado/:id", h.State.ForceDelete)

	cities := NewDomainGroup("cidade", "/Cidade")
	cities.GET("", h.City.List).
		GET("/estado/:id", h.City.ListByState).
		GET("/porestado/:id", h.City.ListByState).
		GET("/PorEstado/:id", h.City.ListByState).
		GET("/:id", h.City.GetByID).
		GET("/:id/dependentes", h.City.Dependents).
		POST("", h.City.Create).
		PUT("/:id", h.City.Update).
		DELETE("/:id", h.City.Delete).
		POST("/Excluir/:id", h.City.Delete).
		POST("/ExcluirForcado/:id", h.City.ForceDelete)

	clients := NewDomainGroup("cliente", "/Cliente")
	clients.GET("", h.Client.List).
		GET("/:id", h.Client.GetByID).
		POST("", h.Client.Create).
		PUT("/:id", h.Client.Update).
		DELETE("/:id", h.Client.Delete)

	suppliers := NewDomainGroup("fornecedor", "/Fornecedor")
	suppliers.GET("", h.Supplier.List).
		GET("/:id", h.Supplier.GetByID).
		POST("", h.Supplier.Create).
		PUT("/:id", h.Supplier.Update).
		DELETE("/:id", h.Supplier.Delete)

	employees := NewDomainGroup("funcionario", "/Funcionario")
	employees.GET("", h.Employee.List).
		GET("/:id", h.Employee.GetByID).
		POST("", h.Employee.Create).
		PUT("/:id", h.Employee.Update).
		DELETE("/:id", h.Employee.Delete)

	transporters := NewDomainGroup("transportadora", "/Transportadora")
	transporters.GET("", h.Transporter.List).
		GET("/:id", h.Transporter.GetByID).
		POST("", h.Transporter.Create).
		PUT("/:id", h.Transporter.Update).
		DELETE("/:id", h.Transporter.Delete)

	return []*DomainGroup{countries, states, cities, clients, suppliers, employees, transporters}
}
