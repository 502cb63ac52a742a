package services

import (
	"testing"
	"time"

	"uploadhub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestInfoService_GetInfo(t *testing.T) {
	mockStorage := new(MockStorageService)
	mockStorage.On("SaveDir").Return("/tmp/up")
	mockStorage.On("Stats").Return(models.StorageStats{Files: 3, Bytes: 42}, nil)

	start := time.Now().Add(-time.Hour)
	svc := NewInfoService("1.0.0", start, mockStorage)

	info := svc.GetInfo()
	assert.Equal(t, "uploadhub", info.ServiceName)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, start, info.UptimeSince)
	assert.Equal(t, "/tmp/up", info.SaveDir)
	assert.Equal(t, int64(3), info.FilesStored)
	assert.Equal(t, int64(42), info.BytesStored)
}

func TestInfoService_StatsAreCached(t *testing.T) {
	mockStorage := new(MockStorageService)
	mockStorage.On("SaveDir").Return("/tmp/up")
	// Stats must be walked once, then served from cache.
	mockStorage.On("Stats").Return(models.StorageStats{Files: 1, Bytes: 5}, nil).Once()

	svc := NewInfoService("1.0.0", time.Now(), mockStorage)

	first := svc.GetInfo()
	second := svc.GetInfo()
	assert.Equal(t, first.FilesStored, second.FilesStored)
	mockStorage.AssertExpectations(t)
}

func TestInfoService_StatsFailureYieldsZeroes(t *testing.T) {
	mockStorage := new(MockStorageService)
	mockStorage.On("SaveDir").Return("/tmp/up")
	mockStorage.On("Stats").Return(models.StorageStats{}, assert.AnError)

	svc := NewInfoService("1.0.0", time.Now(), mockStorage)

	info := svc.GetInfo()
	assert.Equal(t, int64(0), info.FilesStored)
	assert.Equal(t, int64(0), info.BytesStored)
}
