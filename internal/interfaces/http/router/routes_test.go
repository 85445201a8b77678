package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	locationapp "github.com/sistemaempresa/backend/internal/application/location"
	partnerapp "github.com/sistemaempresa/backend/internal/application/partner"
	"github.com/sistemaempresa/backend/internal/infrastructure/config"
	"github.com/sistemaempresa/backend/internal/infrastructure/persistence"
	"github.com/sistemaempresa/backend/internal/infrastructure/persistence/models"
	"github.com/sistemaempresa/backend/internal/interfaces/http/handler"
	"github.com/sistemaempresa/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T, opts Options) *gin.Engine {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.DB.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = db.Close() })

	countryRepo := persistence.NewGormCountryRepository(db.DB)
	stateRepo := persistence.NewGormStateRepository(db.DB)
	cityRepo := persistence.NewGormCityRepository(db.DB)

	h := Handlers{
		Country:     handler.NewCountryHandler(locationapp.NewCountryService(countryRepo)),
		State:       handler.NewStateHandler(locationapp.NewStateService(stateRepo, countryRepo)),
		City:        handler.NewCityHandler(locationapp.NewCityService(cityRepo, stateRepo)),
		Client:      handler.NewClientHandler(partnerapp.NewClientService(persistence.NewGormClientRepository(db.DB), cityRepo)),
		Supplier:    handler.NewSupplierHandler(partnerapp.NewSupplierService(persistence.NewGormSupplierRepository(db.DB), cityRepo)),
		Employee:    handler.NewEmployeeHandler(partnerapp.NewEmployeeService(persistence.NewGormEmployeeRepository(db.DB), cityRepo)),
		Transporter: handler.NewTransporterHandler(partnerapp.NewTransporterService(persistence.NewGormTransporterRepository(db.DB), cityRepo)),
		Health:      handler.NewHealthHandler(db, "test"),
	}
	return NewEngine(zap.NewNop(), h, opts)
}

func serve(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createdID(t *testing.T, w *httptest.ResponseRecorder) int64 {
	t.Helper()
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.ID
}

func TestNewEngine_LocationRoutes(t *testing.T) {
	engine := newTestEngine(t, Options{ServiceName: "test", CORS: middleware.DefaultCORSConfig()})

	countryID := createdID(t, serve(engine, http.MethodPost, "/api/Pais", map[string]any{"nome": "Brasil"}))
	stateID := createdID(t, serve(engine, http.MethodPost, "/api/Estado", map[string]any{"nome": "Bahia", "uf": "BA", "paisId": countryID}))
	cityID := createdID(t, serve(engine, http.MethodPost, "/api/Cidade", map[string]any{"nome": "Salvador", "estadoId": stateID}))

	for _, p := range []string{"/api/Cidade/estado/%d", "/api/Cidade/porestado/%d", "/api/Cidade/PorEstado/%d"} {
		w := serve(engine, http.MethodGet, fmt.Sprintf(p, stateID), nil)
		require.Equal(t, http.StatusOK, w.Code, p)
		assert.Contains(t, w.Body.String(), "Salvador", p)
	}

	w := serve(engine, http.MethodGet, "/api/Estado/detalhado", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, fmt.Sprintf("/api/Estado/porPais/%d", countryID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodPost, fmt.Sprintf("/api/Cidade/Excluir/%d", cityID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"mensagem":"Cidade excluída com sucesso."}`, w.Body.String())

	w = serve(engine, http.MethodPost, fmt.Sprintf("/api/Estado/ExcluirForcado/%d", stateID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewEngine_PartnerRoutes(t *testing.T) {
	engine := newTestEngine(t, Options{ServiceName: "test"})

	for _, tc := range []struct {
		path string
		body map[string]any
	}{
		{"/api/Cliente", map[string]any{"nome": "Ana"}},
		{"/api/Fornecedor", map[string]any{"razaoSocial": "Beta Ltda", "cnpj": "45723174000110"}},
		{"/api/Funcionario", map[string]any{"nome": "Carlos", "cargo": "Motorista"}},
		{"/api/Transportadora", map[string]any{"razaoSocial": "Rápido Cargas"}},
	} {
		id := createdID(t, serve(engine, http.MethodPost, tc.path, tc.body))

		w := serve(engine, http.MethodGet, tc.path, nil)
		assert.Equal(t, http.StatusOK, w.Code, tc.path)

		w = serve(engine, http.MethodDelete, fmt.Sprintf("%s/%d", tc.path, id), nil)
		assert.Equal(t, http.StatusNoContent, w.Code, tc.path)

		w = serve(engine, http.MethodGet, fmt.Sprintf("%s/%d", tc.path, id), nil)
		assert.Equal(t, http.StatusOK, w.Code, tc.path)
		assert.Contains(t, w.Body.String(), `"ativo":false`, tc.path)
	}
}

func TestNewEngine_BodyLimitOnAPI(t *testing.T) {
	engine := newTestEngine(t, Options{ServiceName: "test", MaxBodySize: 32})

	w := serve(engine, http.MethodPost, "/api/Pais", map[string]any{"nome": "República Federativa do Brasil"})
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "REQUEST_TOO_LARGE")

	createdID(t, serve(engine, http.MethodPost, "/api/Pais", map[string]any{"nome": "Chile"}))
}

func TestNewEngine_OuterSurfaces(t *testing.T) {
	engine := newTestEngine(t, Options{
		ServiceName: "router-test",
		Metrics:     true,
		Swagger:     true,
		CORS:        middleware.DefaultCORSConfig(),
	})

	w := serve(engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = serve(engine, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(engine, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `service="router-test"`)

	w = serve(engine, http.MethodGet, "/swagger/index.html", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewEngine_DisabledSurfaces(t *testing.T) {
	engine := newTestEngine(t, Options{ServiceName: "test"})

	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/metrics", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(engine, http.MethodGet, "/swagger/index.html", nil).Code)
}
