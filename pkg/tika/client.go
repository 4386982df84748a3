// Package tika extracts plain text from attachments through an Apache Tika server.
package tika

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"bizops-dashboard/internal/config"
)

// Client talks to a Tika server.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// NewClient creates a Tika client for cfg.ServerURL.
func NewClient(cfg config.TikaConfig) *Client {
	return &Client{
		serverURL:  strings.TrimRight(cfg.ServerURL, "/"),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
	}
}

// ExtractText infers the MIME type from fileName and returns Tika's plain text rendering.
func (c *Client) ExtractText(ctx context.Context, fileReader io.Reader, fileName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.serverURL+"/tika", fileReader)
	if err != nil {
		return "", fmt.Errorf("create tika request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("Content-Type", DetectMimeType(fileName))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call tika: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read tika response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tika returned [%d]: %s", resp.StatusCode, string(body))
	}
	return strings.TrimSpace(string(body)), nil
}

// DetectMimeType maps a file extension to a Content-Type, defaulting to octet-stream.
func DetectMimeType(fileName string) string {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return "application/octet-stream"
	}
	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		return mimeType
	}
	return "application/octet-stream"
}
