package leads

import (
	"context"

	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/internal/properties"
)

// RepositoryInterface defines the persistence operations for leads
type RepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	List(ctx context.Context, limit, offset int) ([]Lead, int, error)
	MarkNotified(ctx context.Context, id uuid.UUID) error
}

// SMSSender delivers a text message and returns the provider message id
type SMSSender interface {
	SendSMS(to, body string) (string, error)
}

// PropertyFinder resolves the listing a lead refers to
type PropertyFinder interface {
	GetProperty(ctx context.Context, id uuid.UUID) (*properties.Property, error)
}
