package batch

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt is appended to destination paths when zstd output is enabled.
const ZstdExt = ".zst"

// FileSink writes items to the filesystem.
//
// Files are written to a temporary file in the same directory and renamed
// to the final path on Commit, so partially written files are never
// visible at the final path. All paths are resolved inside destDir through
// an os.Root.
type FileSink struct {
	destDir   string
	overwrite bool
	zstd      bool
}

// FileSinkOption configures a FileSink.
type FileSinkOption func(*FileSink)

// WithOverwrite allows overwriting existing files.
// By default, existing files are skipped.
func WithOverwrite(overwrite bool) FileSinkOption {
	return func(s *FileSink) {
		s.overwrite = overwrite
	}
}

// WithZstd compresses every file with zstd and appends ZstdExt to its name.
func WithZstd(enabled bool) FileSinkOption {
	return func(s *FileSink) {
		s.zstd = enabled
	}
}

// NewFileSink creates a FileSink that writes to destDir.
//
// destDir must be an absolute path or relative to the current directory.
// It is created if missing; parent directories below it are created as
// needed.
func NewFileSink(destDir string, opts ...FileSinkOption) (*FileSink, error) {
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return nil, fmt.Errorf("create destination %s: %w", destDir, err)
	}
	s := &FileSink{
		destDir: destDir,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *FileSink) target(path string) string {
	if s.zstd {
		path += ZstdExt
	}
	return path
}

// ShouldProcess returns false if the file already exists and overwrite is disabled.
func (s *FileSink) ShouldProcess(path string) bool {
	if !fs.ValidPath(path) {
		return false
	}
	if s.overwrite {
		return true
	}
	destPath := filepath.Join(s.destDir, filepath.FromSlash(s.target(path)))
	_, err := os.Stat(destPath)
	return os.IsNotExist(err)
}

// Writer returns a Committer that writes to a temp file and renames on Commit.
func (s *FileSink) Writer(path string) (Committer, error) {
	if !fs.ValidPath(path) {
		return nil, &fs.PathError{Op: "extract", Path: path, Err: fs.ErrInvalid}
	}
	destRel := filepath.FromSlash(s.target(path))
	destPath := filepath.Join(s.destDir, destRel)

	root, err := os.OpenRoot(s.destDir)
	if err != nil {
		return nil, fmt.Errorf("open destination root %s: %w", s.destDir, err)
	}
	if err := root.MkdirAll(filepath.Dir(destRel), 0o750); err != nil {
		_ = root.Close() //nolint:errcheck // best-effort cleanup
		return nil, fmt.Errorf("create directory %s: %w", filepath.Dir(destPath), err)
	}

	// Create temp file in same directory (for atomic rename)
	tempFile, tempRel, err := createTempFile(root, filepath.Dir(destRel), ".recap-")
	if err != nil {
		_ = root.Close() //nolint:errcheck // best-effort cleanup
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	c := &fileCommitter{
		destPath: destPath,
		destRel:  destRel,
		tempFile: tempFile,
		tempRel:  tempRel,
		root:     root,
		w:        tempFile,
	}
	if s.zstd {
		enc, err := zstd.NewWriter(tempFile)
		if err != nil {
			_ = c.Discard() //nolint:errcheck // best-effort cleanup
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		c.enc = enc
		c.w = enc
	}
	return c, nil
}

// fileCommitter writes to a temp file and renames on Commit.
type fileCommitter struct {
	destPath string
	destRel  string
	tempFile *os.File
	tempRel  string
	root     *os.Root
	enc      *zstd.Encoder
	w        io.Writer
}

// Write implements io.Writer.
func (c *fileCommitter) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

// fail removes the temp file, releases the root and returns err.
func (c *fileCommitter) fail(err error) error {
	_ = c.root.Remove(c.tempRel) //nolint:errcheck // best-effort cleanup
	_ = c.root.Close()           //nolint:errcheck // best-effort cleanup
	return err
}

// Commit flushes the encoder, closes the temp file and renames it to the
// final path.
func (c *fileCommitter) Commit() error {
	if c.enc != nil {
		if err := c.enc.Close(); err != nil {
			_ = c.tempFile.Close() //nolint:errcheck // best-effort cleanup
			return c.fail(fmt.Errorf("close zstd stream: %w", err))
		}
	}
	if err := c.tempFile.Close(); err != nil {
		return c.fail(fmt.Errorf("close temp file: %w", err))
	}

	// Atomic rename to final path
	if err := c.root.Rename(c.tempRel, c.destRel); err != nil {
		return c.fail(fmt.Errorf("rename to %s: %w", c.destPath, err))
	}

	_ = c.root.Close() //nolint:errcheck // best-effort cleanup
	return nil
}

// Discard closes and removes the temp file.
func (c *fileCommitter) Discard() error {
	if c.enc != nil {
		c.enc.Reset(nil)
	}
	_ = c.tempFile.Close() //nolint:errcheck // we're cleaning up
	if err := c.root.Remove(c.tempRel); err != nil {
		_ = c.root.Close() //nolint:errcheck // best-effort cleanup
		return err
	}
	return c.root.Close()
}

func createTempFile(root *os.Root, dir, prefix string) (*os.File, string, error) {
	const attempts = 10
	for range attempts {
		name, err := randomSuffix()
		if err != nil {
			return nil, "", err
		}
		relPath := filepath.Join(dir, prefix+name)
		f, err := root.OpenFile(relPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			return f, relPath, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", errors.New("create temp file: exhausted retries")
}

func randomSuffix() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
