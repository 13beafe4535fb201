package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoplist/internal/handler"
	"shoplist/internal/model"
	"shoplist/internal/repository"
	"shoplist/internal/router"
	"shoplist/internal/service"
	"shoplist/internal/tax"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// setupTestServer wires a full API over store, restoring whatever the
// namespace already holds.
func setupTestServer(t *testing.T, store repository.SlotStore) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	snapshots := repository.NewSnapshotRepository(store, "integration", logger)
	svc := service.NewListService(context.Background(), snapshots, tax.Default(), logger)

	return router.New(
		handler.NewProductHandler(svc, logger),
		handler.NewCategoryHandler(svc, logger),
		handler.NewSummaryHandler(svc, "CAD", logger),
		testAPIKey,
		logger,
	)
}

func request(t *testing.T, server http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)
	return w
}

func backends() map[string]func(t *testing.T) repository.SlotStore {
	return map[string]func(t *testing.T) repository.SlotStore{
		"postgres": func(t *testing.T) repository.SlotStore {
			testDB := SetupTestDB(t)
			store := repository.NewPostgresStore(testDB.Pool, zerolog.Nop())
			CleanupDB(t, testDB.Pool)
			return store
		},
		"redis": func(t *testing.T) repository.SlotStore {
			return repository.NewRedisStore(SetupTestRedis(t), zerolog.Nop())
		},
	}
}

func TestListAPI_PersistsAcrossRestarts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			server := setupTestServer(t, store)

			w := request(t, server, http.MethodPost, "/api/products", map[string]interface{}{
				"name": "Bread", "price": 2.0, "category": "Food",
			})
			require.Equal(t, http.StatusCreated, w.Code)
			var bread handler.ProductResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&bread))
			assert.True(t, bread.Saved)

			w = request(t, server, http.MethodPost, "/api/products", map[string]interface{}{
				"name": "Kibble", "price": 30.5, "category": "Pets",
			})
			require.Equal(t, http.StatusCreated, w.Code)

			w = request(t, server, http.MethodPost, "/api/products", map[string]interface{}{
				"name": "Aspirin", "price": 5.0, "category": "Medication",
			})
			require.Equal(t, http.StatusCreated, w.Code)

			w = request(t, server, http.MethodPost, "/api/products/delete", map[string]interface{}{
				"category": "Medication",
			})
			require.Equal(t, http.StatusOK, w.Code)

			// A fresh server over the same store sees the saved list
			restarted := setupTestServer(t, store)

			w = request(t, restarted, http.MethodGet, "/api/products", nil)
			require.Equal(t, http.StatusOK, w.Code)
			var products []model.Product
			require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
			require.Len(t, products, 2)
			assert.Equal(t, bread.Product, products[0])
			assert.Equal(t, "Kibble", products[1].Name)
			assert.Equal(t, 30.5, products[1].Price)

			w = request(t, restarted, http.MethodGet, "/api/categories", nil)
			var categories []string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&categories))
			assert.Equal(t, []string{"Food", "Medication", "Cleaning", "Other", "Pets"}, categories)

			w = request(t, restarted, http.MethodGet, "/api/summary", nil)
			var summary handler.SummaryResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
			assert.Equal(t, 2, summary.ItemCount)
			assert.False(t, summary.SavedAt.IsZero())
		})
	}
}
