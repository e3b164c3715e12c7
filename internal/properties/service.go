package properties

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/leandrocorretor/realty/internal/images"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/events"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/redis"
	"github.com/leandrocorretor/realty/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	featuredCacheKey = "properties:featured"
	featuredCacheTTL = 10 * time.Minute
)

var tracer = tracing.Tracer("realty/properties")

// Service handles property business logic
type Service struct {
	repo      RepositoryInterface
	cache     Cache
	images    ImageStore
	publisher events.Publisher
	now       func() time.Time
}

// NewService creates a new property service. cache may be nil; publisher
// defaults to a no-op.
func NewService(repo RepositoryInterface, cache Cache, imageStore ImageStore, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{
		repo:      repo,
		cache:     cache,
		images:    imageStore,
		publisher: publisher,
		now:       time.Now,
	}
}

// GetProperties returns a page of listings, newest first
func (s *Service) GetProperties(ctx context.Context, filters *Filters, limit, offset int) ([]Property, int, error) {
	ctx, span := tracer.Start(ctx, "Service.GetProperties")
	defer span.End()

	list, total, err := s.repo.List(ctx, filters, limit, offset)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, 0, err
	}
	if list == nil {
		list = []Property{}
	}
	return list, total, nil
}

// GetFeatured returns the featured listings passing filters, with facets
// computed over every featured listing so the dropdowns never shrink
func (s *Service) GetFeatured(ctx context.Context, filters Filters) (*FeaturedListing, error) {
	ctx, span := tracer.Start(ctx, "Service.GetFeatured")
	defer span.End()

	all, err := s.featured(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	filters.FeaturedOnly = true
	matched := Apply(all, filters)
	span.SetAttributes(attribute.Int("featured.total", len(all)), attribute.Int("featured.matched", len(matched)))

	return &FeaturedListing{
		Properties: matched,
		Facets:     BuildFacets(all),
		Total:      len(all),
	}, nil
}

func (s *Service) featured(ctx context.Context) ([]Property, error) {
	if s.cache != nil {
		var cached []Property
		err := s.cache.GetJSON(ctx, featuredCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			logger.WithContext(ctx).Warn("featured cache read failed", zap.Error(err))
		}
	}

	list, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Property{}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, featuredCacheKey, list, featuredCacheTTL); err != nil {
			logger.WithContext(ctx).Warn("featured cache write failed", zap.Error(err))
		}
	}
	return list, nil
}

// GetProperty returns a single listing
func (s *Service) GetProperty(ctx context.Context, id uuid.UUID) (*Property, error) {
	ctx, span := tracer.Start(ctx, "Service.GetProperty")
	defer span.End()

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, common.NewNotFoundError("property not found", nil)
		}
		tracing.RecordError(span, err)
		return nil, err
	}
	return p, nil
}

// AddProperty validates input, stores its photos and creates the listing
func (s *Service) AddProperty(ctx context.Context, in *PropertyInput) (*Property, error) {
	ctx, span := tracer.Start(ctx, "Service.AddProperty")
	defer span.End()

	if fields := in.Validate(i18n.FromContext(ctx)); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	p := &Property{ID: uuid.New()}
	uploaded, err := s.resolveImages(ctx, p.ID, in)
	if err != nil {
		return nil, err
	}

	in.ToProperty(p)
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt

	if err := s.repo.Create(ctx, p); err != nil {
		s.discard(ctx, uploaded)
		tracing.RecordError(span, err)
		return nil, err
	}

	s.afterWrite(ctx, events.PropertyCreated, p)
	logger.WithContext(ctx).Info("property created", zap.String("property_id", p.ID.String()))
	return p, nil
}

// UpdateProperty replaces a listing's fields and photos
func (s *Service) UpdateProperty(ctx context.Context, id uuid.UUID, in *PropertyInput) (*Property, error) {
	ctx, span := tracer.Start(ctx, "Service.UpdateProperty")
	defer span.End()

	existing, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	if fields := in.Validate(i18n.FromContext(ctx)); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	uploaded, err := s.resolveImages(ctx, id, in)
	if err != nil {
		return nil, err
	}

	p := *existing
	in.ToProperty(&p)
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, &p); err != nil {
		s.discard(ctx, uploaded)
		if isNotFound(err) {
			return nil, common.NewNotFoundError("property not found", nil)
		}
		tracing.RecordError(span, err)
		return nil, err
	}

	s.discard(ctx, dropped(existing.ImageURLs, p.ImageURLs))
	s.afterWrite(ctx, events.PropertyUpdated, &p)
	logger.WithContext(ctx).Info("property updated", zap.String("property_id", id.String()))
	return &p, nil
}

// DeleteProperty removes a listing and its stored photos
func (s *Service) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Service.DeleteProperty")
	defer span.End()

	existing, err := s.GetProperty(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return common.NewNotFoundError("property not found", nil)
		}
		tracing.RecordError(span, err)
		return err
	}

	s.discard(ctx, existing.ImageURLs)
	s.afterWrite(ctx, events.PropertyDeleted, existing)
	logger.WithContext(ctx).Info("property deleted", zap.String("property_id", id.String()))
	return nil
}

// UploadImages stores multipart files and data URLs ahead of a save and
// returns their public URLs in order. propertyID may be uuid.Nil for a new listing.
func (s *Service) UploadImages(ctx context.Context, propertyID uuid.UUID, files []*multipart.FileHeader, dataURLs []string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Service.UploadImages")
	defer span.End()

	n := len(files) + len(dataURLs)
	if n == 0 {
		return nil, common.NewBadRequestError("no images provided", nil)
	}
	if n > images.MaxImagesPerProperty {
		return nil, common.NewBadRequestError(
			i18n.Translate("form.images.too_many", i18n.FromContext(ctx), images.MaxImagesPerProperty), nil)
	}

	urls := make([]string, 0, n)
	for _, fh := range files {
		u, err := s.images.UploadFile(ctx, propertyID, fh)
		if err != nil {
			s.discard(ctx, urls)
			tracing.RecordError(span, err)
			return nil, err
		}
		urls = append(urls, u)
	}
	for _, d := range dataURLs {
		u, err := s.images.UploadDataURL(ctx, propertyID, d)
		if err != nil {
			s.discard(ctx, urls)
			tracing.RecordError(span, err)
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// StateCounts returns the number of listings per state
func (s *Service) StateCounts(ctx context.Context) (map[string]int, error) {
	ctx, span := tracer.Start(ctx, "Service.StateCounts")
	defer span.End()

	counts, err := s.repo.CountByState(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if counts == nil {
		counts = map[string]int{}
	}
	return counts, nil
}

// resolveImages uploads data URLs in place and returns the URLs it created
func (s *Service) resolveImages(ctx context.Context, propertyID uuid.UUID, in *PropertyInput) ([]string, error) {
	var uploaded []string
	for i, ref := range in.ImageURLs {
		switch {
		case images.IsDataURL(ref):
			u, err := s.images.UploadDataURL(ctx, propertyID, ref)
			if err != nil {
				s.discard(ctx, uploaded)
				return nil, err
			}
			in.ImageURLs[i] = u
			uploaded = append(uploaded, u)
		case isImageLink(ref):
		default:
			s.discard(ctx, uploaded)
			return nil, common.NewValidationError(map[string]string{
				"image_urls": i18n.Translate("form.images.upload_failed", i18n.FromContext(ctx)),
			})
		}
	}
	return uploaded, nil
}

func isImageLink(ref string) bool {
	return strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "http://") ||
		(strings.HasPrefix(ref, "/") && !strings.HasPrefix(ref, "//"))
}

// DiscardImages deletes photos uploaded for a save that did not happen
func (s *Service) DiscardImages(ctx context.Context, urls []string) {
	s.discard(ctx, urls)
}

func (s *Service) discard(ctx context.Context, urls []string) {
	if len(urls) > 0 && s.images != nil {
		s.images.Delete(ctx, urls)
	}
}

func (s *Service) afterWrite(ctx context.Context, eventType string, p *Property) {
	if s.cache != nil {
		if err := s.cache.Delete(ctx, featuredCacheKey); err != nil {
			logger.WithContext(ctx).Warn("featured cache invalidation failed", zap.Error(err))
		}
	}
	if err := s.publisher.Publish(ctx, eventType, p); err != nil {
		logger.WithContext(ctx).Warn("failed to publish event",
			zap.String("type", eventType), zap.String("property_id", p.ID.String()), zap.Error(err))
	}
}

// dropped returns the URLs of before that are absent from after
func dropped(before, after []string) []string {
	keep := make(map[string]struct{}, len(after))
	for _, u := range after {
		keep[u] = struct{}{}
	}
	var out []string
	for _, u := range before {
		if _, ok := keep[u]; !ok {
			out = append(out, u)
		}
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNotFound)
}
