package leads

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/events"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/resilience"
	"github.com/leandrocorretor/realty/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = tracing.Tracer("realty/leads")

// Service handles contact requests
type Service struct {
	repo        RepositoryInterface
	properties  PropertyFinder
	sms         SMSSender
	brokerPhone string
	publisher   events.Publisher
	retry       resilience.RetryConfig
	now         func() time.Time
}

// NewService creates a new leads service. sms may be nil, in which case leads
// are stored without notifying the broker.
func NewService(repo RepositoryInterface, finder PropertyFinder, sms SMSSender, brokerPhone string, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	retry := resilience.QuickRetryConfig()
	retry.Name = "twilio_sms"
	return &Service{
		repo:        repo,
		properties:  finder,
		sms:         sms,
		brokerPhone: brokerPhone,
		publisher:   publisher,
		retry:       retry,
		now:         time.Now,
	}
}

// NotificationsEnabled reports whether submitted leads trigger an SMS
func (s *Service) NotificationsEnabled() bool {
	return s.sms != nil && s.brokerPhone != ""
}

// Submit validates and stores a lead, then notifies the broker.
// Notification and event failures are logged and never fail the submission.
func (s *Service) Submit(ctx context.Context, in *LeadInput) (*Lead, error) {
	ctx, span := tracer.Start(ctx, "Service.Submit")
	defer span.End()

	lang := i18n.FromContext(ctx)
	if fields := in.Validate(lang); fields != nil {
		return nil, common.NewValidationError(fields)
	}

	lead := &Lead{
		ID:        uuid.New(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Message:   in.Message,
		Language:  lang,
		CreatedAt: s.now().UTC(),
	}

	var propertyTitle string
	if in.PropertyID != "" {
		id := uuid.MustParse(in.PropertyID)
		if s.properties != nil {
			p, err := s.properties.GetProperty(ctx, id)
			if err != nil {
				if appErr, ok := common.AsAppError(err); ok && appErr.Code == http.StatusNotFound {
					return nil, common.NewBadRequestError("unknown property", err)
				}
				tracing.RecordError(span, err)
				return nil, err
			}
			propertyTitle = p.Title
		}
		lead.PropertyID = &id
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		tracing.RecordError(span, err)
		return nil, common.NewAppError(http.StatusInternalServerError, "failed to save contact request", err)
	}
	span.SetAttributes(attribute.String("lead.id", lead.ID.String()))

	s.notify(ctx, lead, propertyTitle)

	if err := s.publisher.Publish(ctx, events.LeadReceived, lead); err != nil {
		logger.WithContext(ctx).Warn("failed to publish lead event", zap.String("lead_id", lead.ID.String()), zap.Error(err))
	}
	return lead, nil
}

func (s *Service) notify(ctx context.Context, lead *Lead, propertyTitle string) {
	if !s.NotificationsEnabled() {
		return
	}
	log := logger.WithContext(ctx).With(zap.String("lead_id", lead.ID.String()))

	body := SMSBody(lead, propertyTitle)
	sid, err := resilience.Retry(ctx, s.retry, func(ctx context.Context) (interface{}, error) {
		return s.sms.SendSMS(s.brokerPhone, body)
	})
	if err != nil {
		log.Error("failed to notify broker of new lead", zap.Error(err))
		return
	}

	if err := s.repo.MarkNotified(ctx, lead.ID); err != nil {
		log.Warn("failed to mark lead notified", zap.Error(err))
		return
	}
	lead.Notified = true
	log.Info("broker notified of new lead", zap.Any("message_sid", sid))
}

// List returns a page of leads for the back office
func (s *Service) List(ctx context.Context, limit, offset int) ([]Lead, int, error) {
	ctx, span := tracer.Start(ctx, "Service.List")
	defer span.End()

	list, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, 0, common.NewAppError(http.StatusInternalServerError, "failed to list contact requests", err)
	}
	if list == nil {
		list = []Lead{}
	}
	return list, total, nil
}
