package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shoplist/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errNotSaved = fmt.Errorf("failed to save list: %w", model.ErrNotSaved)

func TestProductHandler_List(t *testing.T) {
	products := []model.Product{
		{ID: "a", Name: "Whole Milk", Price: 2, Category: "Food"},
		{ID: "b", Name: "Soap", Price: 4, Category: "Cleaning"},
	}

	tests := []struct {
		name       string
		url        string
		setupMock  func(*MockListService)
		expectBody []model.Product
	}{
		{
			name:       "All products",
			url:        "/api/products",
			setupMock:  func(m *MockListService) { m.On("List").Return(products) },
			expectBody: products,
		},
		{
			name:       "Search",
			url:        "/api/products?q=milk",
			setupMock:  func(m *MockListService) { m.On("Search", "milk").Return(products[:1]) },
			expectBody: products[:1],
		},
		{
			name:       "Search without matches",
			url:        "/api/products?q=bread",
			setupMock:  func(m *MockListService) { m.On("Search", "bread").Return([]model.Product{}) },
			expectBody: []model.Product{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockListService)
			tt.setupMock(mockService)
			handler := NewProductHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			var body []model.Product
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectBody, body)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	bread := &model.Product{ID: "a", Name: "Bread", Price: 2.5, Category: "Food"}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockListService)
		expectedStatus int
		expectedCode   string
		expectSaved    bool
	}{
		{
			name: "Success",
			body: `{"name":"Bread","price":2.5,"category":"Food"}`,
			setupMock: func(m *MockListService) {
				m.On("Add", mock.Anything, "Bread", 2.5, "Food").Return(bread, nil)
			},
			expectedStatus: http.StatusCreated,
			expectSaved:    true,
		},
		{
			name: "Added but not saved",
			body: `{"name":"Bread","price":2.5,"category":"Food"}`,
			setupMock: func(m *MockListService) {
				m.On("Add", mock.Anything, "Bread", 2.5, "Food").Return(bread, errNotSaved)
			},
			expectedStatus: http.StatusCreated,
			expectSaved:    false,
		},
		{
			name: "Empty name",
			body: `{"name":"  ","price":2.5}`,
			setupMock: func(m *MockListService) {
				m.On("Add", mock.Anything, "  ", 2.5, "").Return(nil, model.ErrEmptyName)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeEmptyName,
		},
		{
			name: "Negative price",
			body: `{"name":"Bread","price":-1}`,
			setupMock: func(m *MockListService) {
				m.On("Add", mock.Anything, "Bread", -1.0, "").Return(nil, model.ErrInvalidPrice)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidPrice,
		},
		{
			name:           "Missing price",
			body:           `{"name":"Bread"}`,
			setupMock:      func(m *MockListService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Invalid JSON",
			body:           `{"name":`,
			setupMock:      func(m *MockListService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name: "Unexpected error",
			body: `{"name":"Bread","price":2.5}`,
			setupMock: func(m *MockListService) {
				m.On("Add", mock.Anything, "Bread", 2.5, "").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockListService)
			tt.setupMock(mockService)
			handler := NewProductHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			} else {
				var resp ProductResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, *bread, resp.Product)
				assert.Equal(t, tt.expectSaved, resp.Saved)
				assert.Equal(t, !tt.expectSaved, resp.Warning != "")
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Update(t *testing.T) {
	edited := &model.Product{ID: "a", Name: "Rye", Price: 3, Category: "Food"}

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockListService)
		expectedStatus int
	}{
		{
			name: "Success",
			id:   "a",
			body: `{"name":"Rye","price":3,"category":"Food"}`,
			setupMock: func(m *MockListService) {
				m.On("Edit", mock.Anything, "a", "Rye", 3.0, "Food").Return(edited, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not found",
			id:   "missing",
			body: `{"name":"Rye","price":3}`,
			setupMock: func(m *MockListService) {
				m.On("Edit", mock.Anything, "missing", "Rye", 3.0, "").Return(nil, model.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing price",
			id:             "a",
			body:           `{"name":"Rye"}`,
			setupMock:      func(m *MockListService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing id",
			id:             "",
			body:           `{"name":"Rye","price":3}`,
			setupMock:      func(m *MockListService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockListService)
			tt.setupMock(mockService)
			handler := NewProductHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodPut, "/api/products/"+tt.id, strings.NewReader(tt.body))
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Update(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
		expectSaved    bool
	}{
		{name: "Success", expectedStatus: http.StatusOK, expectSaved: true},
		{name: "Removed but not saved", mockError: errNotSaved, expectedStatus: http.StatusOK},
		{name: "Not found", mockError: model.ErrProductNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockListService)
			mockService.On("Remove", mock.Anything, "a").Return(tt.mockError)
			handler := NewProductHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodDelete, "/api/products/a", nil)
			req.SetPathValue("id", "a")
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp DeleteResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, 1, resp.Removed)
				assert.Equal(t, tt.expectSaved, resp.Saved)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_DeleteMany(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockListService)
		expectedStatus int
		expectRemoved  int
	}{
		{
			name: "By ids",
			body: `{"ids":["a","b"]}`,
			setupMock: func(m *MockListService) {
				m.On("RemoveMany", mock.Anything, []string{"a", "b"}).Return(2, nil)
			},
			expectedStatus: http.StatusOK,
			expectRemoved:  2,
		},
		{
			name: "By category",
			body: `{"category":" Food "}`,
			setupMock: func(m *MockListService) {
				m.On("RemoveCategory", mock.Anything, "Food").Return(3, nil)
			},
			expectedStatus: http.StatusOK,
			expectRemoved:  3,
		},
		{
			name:           "Both selectors",
			body:           `{"ids":["a"],"category":"Food"}`,
			setupMock:      func(m *MockListService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "No selector",
			body:           `{}`,
			setupMock:      func(m *MockListService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockListService)
			tt.setupMock(mockService)
			handler := NewProductHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/products/delete", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.DeleteMany(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp DeleteResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectRemoved, resp.Removed)
				assert.True(t, resp.Saved)
			}
			mockService.AssertExpectations(t)
		})
	}
}
