package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"uploadhub/internal/api/handlers"
	"uploadhub/internal/audit"
	"uploadhub/internal/config"
	"uploadhub/internal/services"
	"uploadhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer wires the real services against a temp save directory.
func setupTestServer(t *testing.T, mode, owner, chownHelper string) (*httptest.Server, string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.SaveDir = t.TempDir()
	cfg.Storage.Mode = mode
	cfg.Storage.Owner = owner
	cfg.Storage.ChownHelper = chownHelper
	require.NoError(t, cfg.ParseAndValidate())

	storageSvc := services.NewStorageService(cfg, &storage.ChownOwnerSetter{Helper: cfg.Storage.ChownHelper})
	auditor := audit.NewLoggerAuditor(false)
	uploadSvc := services.NewUploadService(cfg.Storage.SaveDir, storageSvc, auditor)
	infoSvc := services.NewInfoService("test", time.Now(), storageSvc)

	h := handlers.NewHandlers(uploadSvc, infoSvc, cfg)
	server := httptest.NewServer(SetupRouter(h))
	t.Cleanup(server.Close)

	return server, cfg.Storage.SaveDir
}

// postFile uploads a single file part named "file".
func postFile(t *testing.T, url, filename, payload string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(url+"/upload", writer.FormDataContentType(), body)
	require.NoError(t, err)
	return resp
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUpload_EndToEnd_WithMode(t *testing.T) {
	server, saveDir := setupTestServer(t, "640", "", "")

	resp := postFile(t, server.URL, "a.txt", "hello")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	expected := fmt.Sprintf(`{"saved_files":[%q]}`, filepath.Join(saveDir, "a.txt"))
	assert.JSONEq(t, expected, string(data))

	content, err := os.ReadFile(filepath.Join(saveDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	info, err := os.Stat(filepath.Join(saveDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestUpload_MultipleFilesKeepOrder(t *testing.T) {
	server, saveDir := setupTestServer(t, "", "", "")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range []string{"first.txt", "second.txt", "third.txt"} {
		part, err := writer.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	resp, err := http.Post(server.URL+"/upload", writer.FormDataContentType(), body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, []string{
		filepath.Join(saveDir, "first.txt"),
		filepath.Join(saveDir, "second.txt"),
		filepath.Join(saveDir, "third.txt"),
	}, payload["saved_files"])
}

func TestUpload_NonFileFieldOnly(t *testing.T) {
	server, saveDir := setupTestServer(t, "", "", "")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("note", "not a file"))
	require.NoError(t, writer.Close())

	resp, err := http.Post(server.URL+"/upload", writer.FormDataContentType(), body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, listDir(t, saveDir))
}

func TestUpload_MalformedBoundary(t *testing.T) {
	server, saveDir := setupTestServer(t, "", "", "")

	resp, err := http.Post(
		server.URL+"/upload",
		"multipart/form-data; boundary=xyz",
		strings.NewReader("definitely not a multipart body"),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, listDir(t, saveDir))
}

func TestUpload_LastWriteWins(t *testing.T) {
	server, saveDir := setupTestServer(t, "", "", "")

	resp1 := postFile(t, server.URL, "a.txt", "first version")
	resp1.Body.Close()
	require.Equal(t, http.StatusOK, resp1.StatusCode)

	resp2 := postFile(t, server.URL, "a.txt", "second version")
	resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	content, err := os.ReadFile(filepath.Join(saveDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second version", string(content))
}

func TestUpload_OwnerApplied(t *testing.T) {
	// "true" stands in for a chown helper that succeeds without privileges.
	server, saveDir := setupTestServer(t, "", "nobody", "true")

	resp := postFile(t, server.URL, "a.txt", "hello")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"a.txt"}, listDir(t, saveDir))
}

func TestUpload_OwnerFailureRollsBack(t *testing.T) {
	server, saveDir := setupTestServer(t, "", "nobody", "false")

	resp := postFile(t, server.URL, "a.txt", "hello")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// The failed file must not remain on disk.
	assert.Empty(t, listDir(t, saveDir))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRouter_Index(t *testing.T) {
	server, _ := setupTestServer(t, "", "", "")

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello World!")
}

func TestRouter_UnknownPathIs404(t *testing.T) {
	server, _ := setupTestServer(t, "", "", "")

	resp, err := http.Get(server.URL + "/no/such/path")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "nothing to see here", string(data))
}

func TestRouter_WrongMethodIs404(t *testing.T) {
	server, _ := setupTestServer(t, "", "", "")

	resp, err := http.Get(server.URL + "/upload")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_Health(t *testing.T) {
	server, _ := setupTestServer(t, "", "", "")

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Metrics(t *testing.T) {
	server, _ := setupTestServer(t, "", "", "")

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "uploadhub_")
}

func TestRouter_RequestIDHeader(t *testing.T) {
	server, _ := setupTestServer(t, "", "", "")

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
