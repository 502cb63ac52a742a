package services

import (
	"context"

	"uploadhub/internal/models"

	"github.com/stretchr/testify/mock"
)

// --- MOCK STORAGE SERVICE ---
type MockStorageService struct {
	mock.Mock
}

var _ StorageService = (*MockStorageService)(nil)

func (m *MockStorageService) Save(ctx context.Context, path string, data []byte) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}

func (m *MockStorageService) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockStorageService) Stats() (models.StorageStats, error) {
	args := m.Called()
	return args.Get(0).(models.StorageStats), args.Error(1)
}

func (m *MockStorageService) SaveDir() string {
	args := m.Called()
	return args.String(0)
}

// --- MOCK AUDITOR ---
type MockAuditor struct {
	mock.Mock
}

var _ Auditor = (*MockAuditor)(nil)

func (m *MockAuditor) Log(ctx context.Context, action string, resource string, details map[string]interface{}) {
	m.Called(ctx, action, resource, details)
}

// nopAuditor is for tests that do not care about audit events.
type nopAuditor struct{}

var _ Auditor = (*nopAuditor)(nil)

func (nopAuditor) Log(context.Context, string, string, map[string]interface{}) {}
