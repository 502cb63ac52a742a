package handlers

import (
	"context"
	"mime/multipart"

	"uploadhub/internal/models"
	"uploadhub/internal/services"

	"github.com/stretchr/testify/mock"
)

// --- MOCK UPLOAD SERVICE ---
type MockUploadService struct {
	mock.Mock
}

var _ services.UploadService = (*MockUploadService)(nil)

func (m *MockUploadService) ProcessUpload(ctx context.Context, mr *multipart.Reader) ([]string, int, error) {
	args := m.Called(ctx, mr)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]string), args.Int(1), args.Error(2)
}

// --- MOCK INFO SERVICE ---
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() models.Info {
	args := m.Called()
	return args.Get(0).(models.Info)
}
