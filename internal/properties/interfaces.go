package properties

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

// RepositoryInterface defines the interface for property repository operations
type RepositoryInterface interface {
	List(ctx context.Context, filters *Filters, limit, offset int) ([]Property, int, error)
	ListFeatured(ctx context.Context) ([]Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Property, error)
	Create(ctx context.Context, p *Property) error
	Update(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByState(ctx context.Context) (map[string]int, error)
}

// Cache stores the featured listing between writes
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ImageStore uploads and removes listing photos
type ImageStore interface {
	UploadDataURL(ctx context.Context, propertyID uuid.UUID, dataURL string) (string, error)
	UploadFile(ctx context.Context, propertyID uuid.UUID, fh *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, urls []string)
}
