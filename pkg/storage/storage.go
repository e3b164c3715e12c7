package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/pkg/config"
)

// Provider represents a storage provider type
type Provider string

const (
	ProviderS3    Provider = "s3"
	ProviderLocal Provider = "local"
)

// ErrNotFound is returned when a key does not exist
var ErrNotFound = errors.New("object not found")

// UploadResult contains the result of an upload operation
type UploadResult struct {
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Storage stores listing photos and serves them under public URLs
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*UploadResult, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// GetURL returns the public URL for a key
	GetURL(key string) string
	// KeyFromURL reverses GetURL; ok is false for URLs this storage did not issue
	KeyFromURL(url string) (key string, ok bool)
}

// New builds the storage backend selected by cfg.Provider
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch Provider(cfg.Provider) {
	case ProviderS3:
		return NewS3Storage(ctx, S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			BaseURL:   cfg.BaseURL,
		})
	case ProviderLocal:
		return NewLocalStorage(cfg.LocalPath, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// GeneratePropertyImageKey generates a unique storage key for a listing photo.
// propertyID may be uuid.Nil for photos uploaded before the listing is saved.
func GeneratePropertyImageKey(propertyID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	uniqueID := uuid.New().String()[:8]
	timestamp := time.Now().Format("20060102")

	owner := "drafts"
	if propertyID != uuid.Nil {
		owner = propertyID.String()
	}

	// Format: properties/{property_id|drafts}/{timestamp}_{unique_id}{ext}
	return fmt.Sprintf("properties/%s/%s_%s%s", owner, timestamp, uniqueID, ext)
}

// ValidateMimeType checks if the mime type is allowed
func ValidateMimeType(mimeType string, allowedTypes []string) bool {
	if len(allowedTypes) == 0 {
		return true
	}

	mimeType = strings.ToLower(mimeType)
	for _, allowed := range allowedTypes {
		if strings.ToLower(allowed) == mimeType {
			return true
		}
		// Support wildcards like "image/*"
		if strings.HasSuffix(allowed, "/*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(mimeType, prefix) {
				return true
			}
		}
	}
	return false
}

var mimeByExtension = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
}

var extensionByMime = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/avif": ".avif",
}

// GetMimeTypeFromExtension returns the MIME type for common image extensions
func GetMimeTypeFromExtension(filename string) string {
	if mime, ok := mimeByExtension[strings.ToLower(path.Ext(filename))]; ok {
		return mime
	}
	return "application/octet-stream"
}

// ExtensionForMimeType returns the file extension used when storing mimeType
func ExtensionForMimeType(mimeType string) string {
	if ext, ok := extensionByMime[strings.ToLower(mimeType)]; ok {
		return ext
	}
	return ".bin"
}

// IsImageMimeType checks if the mime type is an image
func IsImageMimeType(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(mimeType), "image/")
}

func keyFromURL(baseURL, url string) (string, bool) {
	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}
