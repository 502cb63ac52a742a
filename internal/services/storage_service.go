package services

import (
	"context"
	"io/fs"
	"path/filepath"

	"uploadhub/internal/config"
	"uploadhub/internal/logging"
	"uploadhub/internal/models"
	"uploadhub/internal/storage"

	"github.com/dustin/go-humanize"
)

// Ensure storageService implements StorageService
var _ StorageService = (*storageService)(nil)

// storageService wraps the 'internal/storage' package to be injectable.
// It carries the immutable per-process save policy: directory, optional
// permission bits and optional owner.
type storageService struct {
	saveDir     string
	mode        fs.FileMode
	hasMode     bool
	owner       string
	ownerSetter storage.OwnerSetter
}

// NewStorageService creates a new StorageService from the process configuration.
func NewStorageService(cfg *config.Config, ownerSetter storage.OwnerSetter) *storageService {
	return &storageService{
		saveDir:     cfg.Storage.SaveDir,
		mode:        cfg.FileMode,
		hasMode:     cfg.HasFileMode,
		owner:       cfg.Storage.Owner,
		ownerSetter: ownerSetter,
	}
}

// Save creates the file, writes the payload, then applies mode and owner when
// configured. The first failing step aborts the sequence; cleanup of whatever
// is already on disk is the caller's job so the original error survives.
func (s *storageService) Save(ctx context.Context, path string, data []byte) error {
	n, err := storage.SaveFile(path, data)
	if err != nil {
		return err
	}

	if s.hasMode {
		if err := storage.ApplyMode(path, s.mode); err != nil {
			return err
		}
	}

	if s.owner != "" {
		if err := s.ownerSetter.SetOwner(ctx, s.owner, path); err != nil {
			return err
		}
	}

	logging.Log.Debugf("Saved %s (%s)", path, humanize.Bytes(uint64(n)))
	return nil
}

// Remove deletes a file from the save directory, tolerating absence.
func (s *storageService) Remove(path string) error {
	return storage.RemoveFile(path)
}

// Stats walks the save directory and sums up files and bytes.
func (s *storageService) Stats() (models.StorageStats, error) {
	var stats models.StorageStats
	err := filepath.WalkDir(s.saveDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		stats.Files++
		stats.Bytes += info.Size()
		return nil
	})
	if err != nil {
		return models.StorageStats{}, err
	}
	return stats, nil
}

// SaveDir returns the configured save directory.
func (s *storageService) SaveDir() string {
	return s.saveDir
}
