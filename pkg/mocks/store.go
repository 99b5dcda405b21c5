package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sukryu/pAdmin/pkg/store/base"
)

// MockRepository implements base.Repository.
type MockRepository struct {
	mock.Mock
}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

func (m *MockRepository) Fill(ctx context.Context, model any, values map[string]any) error {
	args := m.Called(ctx, model, values)
	return args.Error(0)
}

func (m *MockRepository) Save(ctx context.Context, model any) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockRepository) Find(ctx context.Context, model any, id string, with ...string) error {
	args := m.Called(ctx, model, id, with)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, model any, q base.ListQuery) (any, int64, error) {
	args := m.Called(ctx, model, q)
	return args.Get(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Delete(ctx context.Context, model any) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

// MockNotifier implements toast.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Info(message string) {
	m.Called(message)
}

func (m *MockNotifier) Warning(message string) {
	m.Called(message)
}
