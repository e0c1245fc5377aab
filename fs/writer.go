// Package fs provides file-based storage for rendered feeds.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagefeed"
)

// FeedPath returns the file name of a feed rendered in format.
// Example: feed "3f2a" as RSS → 3f2a.xml
func FeedPath(feed *pagefeed.Feed, format pagefeed.Format) (string, error) {
	id := strings.TrimSpace(feed.ID)
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", pagefeed.Errorf(pagefeed.EINVALID, "feed ID %q is not a valid file name", feed.ID)
	}
	return id + format.Extension(), nil
}

// Ensure Writer implements pagefeed.FeedWriter at compile time.
var _ pagefeed.FeedWriter = (*Writer)(nil)

// Writer writes rendered feeds as files in a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteFeed writes payload to <baseDir>/<feed id><ext>. The file is
// replaced atomically so readers never observe a partial feed.
func (w *Writer) WriteFeed(ctx context.Context, feed *pagefeed.Feed, format pagefeed.Format, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := FeedPath(feed, format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.baseDir, "."+relPath+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(w.baseDir, relPath))
}
