package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"uploadhub/internal/logging"
	"uploadhub/internal/models"

	"github.com/spf13/cobra"
)

var uploadURL string

// uploadCmd is a small client for a running receiver: it posts the given
// local files as multipart parts named "file" and prints the saved paths.
var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Upload local files to a running receiver",
	Args:  cobra.MinimumNArgs(1),
	// The client does not need the server configuration; override the
	// root's PersistentPreRunE so a missing save_dir is not fatal here.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(logLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(args)
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadURL, "url", "http://localhost:8080/upload", "Upload endpoint of the receiver.")
	RootCmd.AddCommand(uploadCmd)
}

func runUpload(files []string) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", file, err)
		}

		part, err := writer.CreateFormFile("file", filepath.Base(file))
		if err != nil {
			f.Close()
			return fmt.Errorf("failed to build multipart body: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		f.Close()
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	resp, err := http.Post(uploadURL, writer.FormDataContentType(), body)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload rejected: %s", resp.Status)
	}

	var result models.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	for _, path := range result.SavedFiles {
		fmt.Println(path)
	}
	return nil
}
