package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"buildops_backend/internal/models"
	"buildops_backend/internal/repositories"
	"buildops_backend/internal/router"
	"buildops_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	engine := gin.New()
	router.Setup(engine, repositories.Load(store))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestMaterialLifecycleOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/materials",
		`{"name":"Cement","current_quantity":100,"min_quantity":10,"unit":"kg","price_per_unit":"150.00"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var material models.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &material))
	require.NotEmpty(t, material.ID)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/materials/"+material.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Manual receipt through the ledger.
	w = doJSON(t, engine, http.MethodPost, "/api/v1/stock-movements",
		`{"material_id":"`+material.ID+`","type":"RECEIPT","quantity":50}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodGet, "/api/v1/materials/"+material.ID+"/movements", "")
	require.Equal(t, http.StatusOK, w.Code)
	var movements []models.StockMovement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movements))
	require.Len(t, movements, 1)
	assert.Equal(t, float64(150), movements[0].AfterQuantity)

	// A material with ledger history cannot be deleted.
	w = doJSON(t, engine, http.MethodDelete, "/api/v1/materials/"+material.ID, "")
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestLowStockEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/materials",
		`{"name":"Sand","current_quantity":18,"min_quantity":20,"unit":"cu.m","price_per_unit":"20.00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, engine, http.MethodPost, "/api/v1/materials",
		`{"name":"Cement","current_quantity":100,"min_quantity":10,"unit":"kg","price_per_unit":"150.00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/materials/low-stock", "")
	require.Equal(t, http.StatusOK, w.Code)

	var lowStock []models.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lowStock))
	require.Len(t, lowStock, 1)
	assert.Equal(t, "Sand", lowStock[0].Name)
}

func TestUnknownMaterialReturns404(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/materials/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestManualSaleMovementRejected(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/materials",
		`{"name":"Cement","current_quantity":100,"min_quantity":10,"unit":"kg","price_per_unit":"150.00"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var material models.Material
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &material))

	w = doJSON(t, engine, http.MethodPost, "/api/v1/stock-movements",
		`{"material_id":"`+material.ID+`","type":"SALE","quantity":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestDashboardEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/reports/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 0, summary.Materials.TotalItems)
}
