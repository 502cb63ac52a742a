package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"uploadhub/internal/logging"
	"uploadhub/internal/metrics"
	"uploadhub/internal/storage"

	"github.com/dustin/go-humanize"
)

// Ensure uploadService implements UploadService
var _ UploadService = (*uploadService)(nil)

// uploadService drives the multipart decoder and the storage service for one
// request at a time. It holds no per-request state; a value is shared safely
// by all concurrent requests.
type uploadService struct {
	saveDir string
	storage StorageService
	auditor Auditor
}

// NewUploadService creates a new UploadService.
func NewUploadService(saveDir string, storageSvc StorageService, auditor Auditor) *uploadService {
	return &uploadService{
		saveDir: saveDir,
		storage: storageSvc,
		auditor: auditor,
	}
}

// ProcessUpload pulls parts from the multipart stream one at a time and saves
// every part that carries a filename. Parts without a filename are ordinary
// form fields and are skipped. The first failure aborts the request; files
// already saved stay on disk, only the failing file is rolled back.
func (s *uploadService) ProcessUpload(ctx context.Context, mr *multipart.Reader) ([]string, int, error) {
	var saved []string

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			metrics.UploadErrorsTotal.WithLabelValues("decode").Inc()
			return nil, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}

		filename := part.FileName()
		if filename == "" {
			// Not a file field.
			part.Close()
			continue
		}

		dest := filepath.Join(s.saveDir, filename)
		if escapesDir(dest, s.saveDir) {
			// Kept compatible with clients that rely on relative names;
			// see the traversal note in DESIGN.md.
			logging.Log.Warnf("Filename %q resolves outside the save directory: %s", filename, dest)
		}

		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			metrics.UploadErrorsTotal.WithLabelValues("read").Inc()
			return nil, http.StatusInternalServerError, fmt.Errorf("%w: %s: %v", ErrFieldRead, filename, err)
		}

		if err := s.storage.Save(ctx, dest, data); err != nil {
			logging.Log.Errorf("Failed to save %s: %v", dest, err)
			if rerr := s.storage.Remove(dest); rerr != nil {
				logging.Log.Errorf("Rollback of %s failed: %v", dest, rerr)
			}
			metrics.UploadErrorsTotal.WithLabelValues(saveStage(err)).Inc()
			s.auditor.Log(ctx, "upload.reject", dest, map[string]interface{}{
				"filename": filename,
				"error":    err.Error(),
			})
			return nil, http.StatusInternalServerError, err
		}

		logging.Log.Infof("Saved %s (%s)", dest, humanize.Bytes(uint64(len(data))))
		metrics.FilesSavedTotal.Inc()
		metrics.UploadBytesTotal.Add(float64(len(data)))
		s.auditor.Log(ctx, "upload.save", dest, map[string]interface{}{
			"filename": filename,
			"size":     len(data),
		})

		saved = append(saved, dest)
	}

	if len(saved) == 0 {
		return nil, http.StatusBadRequest, ErrNoFiles
	}

	metrics.UploadsTotal.Inc()
	return saved, http.StatusOK, nil
}

// escapesDir reports whether dest lies outside dir after cleaning.
func escapesDir(dest, dir string) bool {
	cleanedDir := filepath.Clean(dir)
	return !strings.HasPrefix(filepath.Clean(dest), cleanedDir+string(filepath.Separator))
}

// saveStage maps a save error to the metrics stage label.
func saveStage(err error) string {
	switch {
	case errors.Is(err, storage.ErrCreate):
		return "create"
	case errors.Is(err, storage.ErrWrite):
		return "write"
	case errors.Is(err, storage.ErrPermissions):
		return "permissions"
	case errors.Is(err, storage.ErrOwner):
		return "owner"
	default:
		return "unknown"
	}
}
