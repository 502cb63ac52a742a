package services

import (
	"time"

	"uploadhub/internal/logging"
	"uploadhub/internal/models"

	"github.com/patrickmn/go-cache"
)

var _ InfoService = (*infoService)(nil)

const statsCacheKey = "storage_stats"

// infoService reports service metadata plus save-directory totals. Walking
// the directory on every request would be wasteful, so the totals are cached
// for a short interval.
type infoService struct {
	Version   string
	StartTime time.Time
	Storage   StorageService

	statsCache *cache.Cache
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, startTime time.Time, storageSvc StorageService) *infoService {
	return &infoService{
		Version:    version,
		StartTime:  startTime,
		Storage:    storageSvc,
		statsCache: cache.New(30*time.Second, time.Minute),
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	stats := s.cachedStats()
	return models.Info{
		ServiceName: "uploadhub",
		Version:     s.Version,
		UptimeSince: s.StartTime,
		SaveDir:     s.Storage.SaveDir(),
		FilesStored: stats.Files,
		BytesStored: stats.Bytes,
	}
}

func (s *infoService) cachedStats() models.StorageStats {
	if v, found := s.statsCache.Get(statsCacheKey); found {
		return v.(models.StorageStats)
	}

	stats, err := s.Storage.Stats()
	if err != nil {
		logging.Log.Warnf("Failed to collect storage stats: %v", err)
		return models.StorageStats{}
	}

	s.statsCache.Set(statsCacheKey, stats, cache.DefaultExpiration)
	return stats
}
