// Package download streams remote model artifacts to the local filesystem.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/chonker8/harness/internal/domain"
	"github.com/go-resty/resty/v2"
)

// chunkSize bounds each streaming read so large model files are never
// held in memory.
const chunkSize = 32 * 1024

// Client implements domain.ArtifactDownloader over HTTP(S).
type Client struct {
	http *resty.Client
}

// NewClient creates a new downloader client.
func NewClient() *Client {
	return &Client{
		// Raw body mode: the payload is streamed by the caller, not
		// buffered by resty.
		http: resty.New().SetDoNotParseResponse(true),
	}
}

// NewClientWithHTTP creates a downloader with a custom resty client.
// This is useful for testing.
func NewClientWithHTTP(http *resty.Client) *Client {
	return &Client{http: http.SetDoNotParseResponse(true)}
}

// Ensure Client implements domain.ArtifactDownloader interface.
var _ domain.ArtifactDownloader = (*Client)(nil)

// Fetch streams the task's URL to its destination path. If the
// destination already exists and a backup path is set, the old file is
// renamed there first; any prior backup at that path is overwritten.
// A failure mid-stream leaves the partial file in place; there is no
// retry or resume.
func (c *Client) Fetch(ctx context.Context, task domain.DownloadTask, onProgress domain.ProgressFunc) error {
	if err := c.backupExisting(task); err != nil {
		return err
	}

	resp, err := c.http.R().SetContext(ctx).Get(task.URL)
	if err != nil {
		return fmt.Errorf("request %s: %w", task.URL, err)
	}
	body := resp.RawBody()
	defer func() { _ = body.Close() }()

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %s", task.URL, resp.Status())
	}

	total := resp.RawResponse.ContentLength

	if err := os.MkdirAll(filepath.Dir(task.Dest), 0o750); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	out, err := os.Create(task.Dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", task.Dest, err)
	}

	downloaded, copyErr := streamTo(out, body, total, onProgress)
	if closeErr := out.Close(); copyErr == nil && closeErr != nil {
		copyErr = fmt.Errorf("close %s: %w", task.Dest, closeErr)
	}
	if copyErr != nil {
		// Partial file stays at the destination.
		return copyErr
	}

	if total > 0 && downloaded != total {
		return fmt.Errorf("download %s: got %d bytes, expected %d", task.URL, downloaded, total)
	}
	return nil
}

// backupExisting renames an existing destination to the backup path.
// Backup collisions overwrite silently.
func (c *Client) backupExisting(task domain.DownloadTask) error {
	if task.BackupPath == "" {
		return nil
	}
	if _, err := os.Stat(task.Dest); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", task.Dest, err)
	}
	if err := os.Rename(task.Dest, task.BackupPath); err != nil {
		return fmt.Errorf("backup %s: %w", task.Dest, err)
	}
	return nil
}

// streamTo copies the body in bounded chunks, reporting progress after
// each chunk. Total <= 0 means the size is unknown and progress is
// indeterminate.
func streamTo(out io.Writer, body io.Reader, total int64, onProgress domain.ProgressFunc) (int64, error) {
	buf := make([]byte, chunkSize)
	var downloaded int64
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return downloaded, fmt.Errorf("write chunk: %w", writeErr)
			}
			downloaded += int64(n)
			if onProgress != nil {
				onProgress(domain.Progress{Downloaded: downloaded, Total: total})
			}
		}
		if readErr == io.EOF {
			return downloaded, nil
		}
		if readErr != nil {
			return downloaded, fmt.Errorf("read body: %w", readErr)
		}
	}
}
