package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leandrocorretor/realty/pkg/logger"
	"go.uber.org/zap"
)

// LocalStorage keeps photos on disk. The HTTP server exposes Root under BaseURL.
type LocalStorage struct {
	Root    string
	BaseURL string
}

// NewLocalStorage creates root if needed
func NewLocalStorage(root, baseURL string) (*LocalStorage, error) {
	if root == "" {
		return nil, errors.New("local storage path is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	if baseURL == "" {
		baseURL = "/media"
	}
	return &LocalStorage{Root: root, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// path resolves key inside Root, rejecting keys that escape it
func (s *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.Root, filepath.FromSlash(clean)), nil
}

// Upload writes reader to disk
func (s *LocalStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*UploadResult, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	written, err := io.Copy(tmp, reader)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("store file: %w", err)
	}

	logger.WithContext(ctx).Info("File stored locally", zap.String("key", key), zap.Int64("size", written))

	return &UploadResult{
		Key:        key,
		URL:        s.GetURL(key),
		Size:       written,
		MimeType:   contentType,
		UploadedAt: time.Now(),
	}, nil
}

// Download opens the stored file
func (s *LocalStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

// Delete removes the file; deleting a missing key is not an error
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Exists checks if a file exists on disk
func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	p, err := s.path(key)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// GetURL returns the public URL for a file
func (s *LocalStorage) GetURL(key string) string {
	return s.BaseURL + "/" + key
}

// KeyFromURL reverses GetURL
func (s *LocalStorage) KeyFromURL(url string) (string, bool) {
	return keyFromURL(s.BaseURL, url)
}
