package handler_test

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
	"github.com/sistemaempresa/backend/internal/interfaces/http/dto"
	"github.com/sistemaempresa/backend/internal/interfaces/http/handler"
	"github.com/sistemaempresa/backend/internal/interfaces/http/middleware"
	"github.com/sistemaempresa/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
)

// testAPI is a gin engine wired to services over an in-memory sqlite database
type testAPI struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.DB.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = db.Close() })

	cityRepo := persistence.NewGormCityRepository(db.DB)
	countryRepo := persistence.NewGormCountryRepository(db.DB)
	stateRepo := persistence.NewGormStateRepository(db.DB)

	handlers := router.Handlers{
		Country:     handler.NewCountryHandler(locationapp.NewCountryService(countryRepo)),
		State:       handler.NewStateHandler(locationapp.NewStateService(stateRepo, countryRepo)),
		City:        handler.NewCityHandler(locationapp.NewCityService(cityRepo, stateRepo)),
		Client:      handler.NewClientHandler(partnerapp.NewClientService(persistence.NewGormClientRepository(db.DB), cityRepo)),
		Supplier:    handler.NewSupplierHandler(partnerapp.NewSupplierService(persistence.NewGormSupplierRepository(db.DB), cityRepo)),
		Employee:    handler.NewEmployeeHandler(partnerapp.NewEmployeeService(persistence.NewGormEmployeeRepository(db.DB), cityRepo)),
		Transporter: handler.NewTransporterHandler(partnerapp.NewTransporterService(persistence.NewGormTransporterRepository(db.DB), cityRepo)),
		Health:      handler.NewHealthHandler(db, "test"),
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/health/ready", handlers.Health.Ready)

	rt := router.NewRouter(r)
	for _, group := range router.APIGroups(handlers) {
		rt.Register(group)
	}
	rt.Setup()

	return &testAPI{t: t, engine: r}
}

// do sends a request and returns the recorder
func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// create posts body and returns the id of the created resource
func (a *testAPI) create(path string, body any) int64 {
	a.t.Helper()

	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.ID
}

// seedHierarchy creates Brasil > São Paulo > Campinas and returns their ids
func (a *testAPI) seedHierarchy() (countryID, stateID, cityID int64) {
	a.t.Helper()

	countryID = a.create("/api/Pais", map[string]any{"nome": "Brasil", "sigla": "BR", "codigo": "+55"})
	stateID = a.create("/api/Estado", map[string]any{"nome": "São Paulo", "uf": "sp", "paisId": countryID})
	cityID = a.create("/api/Cidade", map[string]any{"nome": "Campinas", "codigoIbge": "3509502", "estadoId": stateID})
	return countryID, stateID, cityID
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	return decodeJSON[dto.ErrorResponse](t, w)
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func urlf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
