package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chichilu/closet-api/internal/application/stock"
	"github.com/chichilu/closet-api/internal/domain/entity"
	"github.com/chichilu/closet-api/internal/infrastructure/memory"
	apphttp "github.com/chichilu/closet-api/internal/interfaces/http"
)

func buildStockApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	store := memory.NewStore()
	svc := stock.NewService(store.TxRunner(), store.VariantRepo(), store.ProductRepo())
	history := stock.NewHistory(store.MovementRepo(), store.VariantRepo())

	now := time.Now()
	p := &entity.Product{ID: uuid.New().String(), SKU: "AO01", Name: "Áo", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.ProductRepo().Create(p))
	v := &entity.Variant{ID: uuid.New().String(), ProductID: p.ID, Size: "M", SKU: "AO01-M", Stock: 2, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.VariantRepo().Create(v))

	app := fiber.New()
	handler := apphttp.NewStockHandler(svc, history)
	app.Post("/api/stock/import", handler.Import)
	app.Post("/api/stock/export", handler.Export)
	app.Get("/api/stock/history", handler.History)
	return app, v.ID
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestStockHandler_ImportYExport(t *testing.T) {
	app, variantID := buildStockApp(t)

	resp := postJSON(t, app, "/api/stock/import", map[string]any{"variant_id": variantID, "quantity": 3})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/stock/export", map[string]any{"variant_id": variantID, "quantity": 4})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Stock int `json:"stock"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Stock)
}

func TestStockHandler_ExportInsuficienteEs400(t *testing.T) {
	app, variantID := buildStockApp(t)

	resp := postJSON(t, app, "/api/stock/export", map[string]any{"variant_id": variantID, "quantity": 99})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
}

func TestStockHandler_VarianteInexistenteEs404(t *testing.T) {
	app, _ := buildStockApp(t)

	resp := postJSON(t, app, "/api/stock/import", map[string]any{"variant_id": "no-existe", "quantity": 1})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStockHandler_History(t *testing.T) {
	app, variantID := buildStockApp(t)

	postJSON(t, app, "/api/stock/import", map[string]any{"variant_id": variantID, "quantity": 3})
	postJSON(t, app, "/api/stock/export", map[string]any{"variant_id": variantID, "quantity": 1})

	req := httptest.NewRequest(http.MethodGet, "/api/stock/history", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var movs []struct {
		Delta  int    `json:"change_qty"`
		Reason string `json:"reason"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&movs))
	require.Len(t, movs, 2)
	// Más recientes primero.
	assert.Equal(t, -1, movs[0].Delta)
	assert.Equal(t, "import", movs[1].Reason)
}
