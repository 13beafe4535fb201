package handler

import (
	"context"
	"time"

	"shoplist/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockListService is a mock implementation of ListService.
type MockListService struct {
	mock.Mock
}

func (m *MockListService) Add(ctx context.Context, name string, price float64, category string) (*model.Product, error) {
	args := m.Called(ctx, name, price, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockListService) Edit(ctx context.Context, id, name string, price float64, category string) (*model.Product, error) {
	args := m.Called(ctx, id, name, price, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockListService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListService) RemoveMany(ctx context.Context, ids []string) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

func (m *MockListService) RemoveCategory(ctx context.Context, category string) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *MockListService) List() []model.Product {
	args := m.Called()
	return args.Get(0).([]model.Product)
}

func (m *MockListService) Search(query string) []model.Product {
	args := m.Called(query)
	return args.Get(0).([]model.Product)
}

func (m *MockListService) Categories() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockListService) AddCategory(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockListService) DeleteCategory(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockListService) Summary() model.Summary {
	args := m.Called()
	return args.Get(0).(model.Summary)
}

func (m *MockListService) CategoryTotals() []model.CategoryTotal {
	args := m.Called()
	return args.Get(0).([]model.CategoryTotal)
}

func (m *MockListService) Groups() map[string][]model.Product {
	args := m.Called()
	return args.Get(0).(map[string][]model.Product)
}

func (m *MockListService) LastSaved() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
