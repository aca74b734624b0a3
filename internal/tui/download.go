package tui

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/folio-tui/folio/internal/models"
)

const downloadTimeout = 30 * time.Second

// Downloader saves a download link locally and returns the saved path.
type Downloader interface {
	Download(ctx context.Context, link models.SocialLink) (string, error)
}

// HTTPDownloader fetches download links into Dir.
type HTTPDownloader struct {
	Client *http.Client
	Dir    string
}

// Download writes the response body to Dir. A partial file never replaces
// an earlier complete one.
func (d HTTPDownloader) Download(ctx context.Context, link models.SocialLink) (string, error) {
	if d.Dir == "" {
		return "", fmt.Errorf("download directory is not set")
	}
	if !strings.HasPrefix(link.URL, "http://") && !strings.HasPrefix(link.URL, "https://") {
		return "", fmt.Errorf("refusing to download %q", link.URL)
	}
	client := d.Client
	if client == nil {
		client = &http.Client{Timeout: downloadTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.URL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", link.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: %s", link.URL, resp.Status)
	}

	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(d.Dir, downloadName(link.Label, resp.Header))
	tmp, err := os.CreateTemp(d.Dir, ".folio-download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// downloadName prefers the server's filename, then the link label with an
// extension from the content type.
func downloadName(label string, header http.Header) string {
	if _, params, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil {
		if name := filepath.Base(params["filename"]); name != "." && name != string(filepath.Separator) && name != "" {
			return name
		}
	}
	base := slug(label)
	if base == "" {
		base = "download"
	}
	if mediaType, _, err := mime.ParseMediaType(header.Get("Content-Type")); err == nil {
		if exts, _ := mime.ExtensionsByType(mediaType); len(exts) > 0 {
			return base + exts[0]
		}
	}
	return base
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
