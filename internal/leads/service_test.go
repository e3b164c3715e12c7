package leads

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/internal/properties"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/events"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository implements RepositoryInterface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, lead *Lead) error {
	return m.Called(ctx, lead).Error(0)
}

func (m *MockRepository) List(ctx context.Context, limit, offset int) ([]Lead, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]Lead), args.Int(1), args.Error(2)
}

func (m *MockRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockSMSSender implements SMSSender for testing
type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) SendSMS(to, body string) (string, error) {
	args := m.Called(to, body)
	return args.String(0), args.Error(1)
}

// MockPropertyFinder implements PropertyFinder for testing
type MockPropertyFinder struct {
	mock.Mock
}

func (m *MockPropertyFinder) GetProperty(ctx context.Context, id uuid.UUID) (*properties.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.Property), args.Error(1)
}

type recordingPublisher struct {
	types []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ interface{}) error {
	p.types = append(p.types, eventType)
	return nil
}

func (p *recordingPublisher) Close() {}

const brokerPhone = "+5511991866739"

type fixture struct {
	repo   *MockRepository
	sms    *MockSMSSender
	finder *MockPropertyFinder
	pub    *recordingPublisher
	svc    *Service
}

func newFixture(withSMS bool) *fixture {
	f := &fixture{
		repo:   new(MockRepository),
		sms:    new(MockSMSSender),
		finder: new(MockPropertyFinder),
		pub:    &recordingPublisher{},
	}
	var sender SMSSender
	if withSMS {
		sender = f.sms
	}
	f.svc = NewService(f.repo, f.finder, sender, brokerPhone, f.pub)
	f.svc.now = func() time.Time { return time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC) }
	f.svc.retry = resilience.RetryConfig{Name: "test", MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
	return f
}

func validInput() *LeadInput {
	return &LeadInput{
		Name:    " Maria Souza ",
		Phone:   "(13) 99123-4567",
		Email:   "Maria@Example.com",
		Message: "Gostaria de agendar uma visita.",
	}
}

func TestLeadInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *LeadInput)
		field  string
		key    string
	}{
		{"missing name", func(in *LeadInput) { in.Name = "  " }, "name", "lead.name.required"},
		{"short phone", func(in *LeadInput) { in.Phone = "1234" }, "phone", "lead.phone.invalid"},
		{"long phone", func(in *LeadInput) { in.Phone = "+55 13 99123 4567 0000" }, "phone", "lead.phone.invalid"},
		{"arabic-indic digits", func(in *LeadInput) { in.Phone = "١٣٩٩١٢٣٤٥٦٧" }, "phone", "lead.phone.invalid"},
		{"bad email", func(in *LeadInput) { in.Email = "maria@" }, "email", "lead.email.invalid"},
		{"missing message", func(in *LeadInput) { in.Message = "" }, "message", "lead.message.required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			fields := in.Validate("en")

			require.Contains(t, fields, tt.field)
			assert.Equal(t, i18n.Translate(tt.key, "en"), fields[tt.field])
		})
	}
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "5513991234567", PhoneDigits("+55 (13) 99123-4567"))
	assert.Equal(t, "13", PhoneDigits("١٣ 13 ۱۳"))
	assert.Empty(t, PhoneDigits("sem número"))
}

func TestLeadInput_Validate_OptionalEmail(t *testing.T) {
	in := validInput()
	in.Email = ""
	assert.Nil(t, in.Validate("pt"))
	assert.Equal(t, "Maria Souza", in.Name)
}

func TestSMSBody(t *testing.T) {
	lead := &Lead{Name: "Maria", Phone: "13991234567", Message: "Olá", Language: "pt"}
	assert.Equal(t, "Novo contato pelo site: Maria (13991234567): Olá", SMSBody(lead, ""))

	lead.Language = "en"
	assert.Equal(t, "New website lead: Maria (13991234567): Olá\nProperty: Casa no Centro", SMSBody(lead, "Casa no Centro"))

	// Languages without an SMS template use Portuguese
	lead.Language = "de"
	assert.True(t, strings.HasPrefix(SMSBody(lead, ""), "Novo contato pelo site"))
}

func TestSMSBody_TruncatesLongMessages(t *testing.T) {
	lead := &Lead{Name: "Ana", Phone: "1", Message: strings.Repeat("a", 500), Language: "pt"}
	body := SMSBody(lead, "")
	assert.True(t, strings.HasSuffix(body, "…"))
	assert.Less(t, len([]rune(body)), 300)
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	f := newFixture(true)
	ctx := i18n.WithLanguage(context.Background(), "en")

	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(l *Lead) bool {
		return l.Name == "Maria Souza" && l.Email == "maria@example.com" && l.Language == "en" && !l.Notified
	})).Return(nil)
	f.sms.On("SendSMS", brokerPhone, "New website lead: Maria Souza ((13) 99123-4567): Gostaria de agendar uma visita.").
		Return("SM1", nil)
	f.repo.On("MarkNotified", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)

	lead, err := f.svc.Submit(ctx, validInput())

	require.NoError(t, err)
	assert.True(t, lead.Notified)
	assert.Equal(t, time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC), lead.CreatedAt)
	assert.Equal(t, []string{events.LeadReceived}, f.pub.types)
	f.repo.AssertExpectations(t)
	f.sms.AssertExpectations(t)
}

func TestSubmit_WithProperty(t *testing.T) {
	f := newFixture(true)
	propertyID := uuid.New()
	in := validInput()
	in.PropertyID = propertyID.String()

	f.finder.On("GetProperty", mock.Anything, propertyID).Return(&properties.Property{ID: propertyID, Title: "Casa no Centro"}, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(l *Lead) bool {
		return l.PropertyID != nil && *l.PropertyID == propertyID
	})).Return(nil)
	f.sms.On("SendSMS", brokerPhone, mock.MatchedBy(func(body string) bool {
		return strings.HasSuffix(body, "\nImóvel: Casa no Centro")
	})).Return("SM2", nil)
	f.repo.On("MarkNotified", mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.Submit(context.Background(), in)

	require.NoError(t, err)
	f.sms.AssertExpectations(t)
}

func TestSubmit_UnknownProperty(t *testing.T) {
	f := newFixture(true)
	propertyID := uuid.New()
	in := validInput()
	in.PropertyID = propertyID.String()

	f.finder.On("GetProperty", mock.Anything, propertyID).Return(nil, common.NewNotFoundError("property not found", nil))

	_, err := f.svc.Submit(context.Background(), in)

	appErr, ok := common.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_ValidationError(t *testing.T) {
	f := newFixture(true)
	in := validInput()
	in.Message = ""

	_, err := f.svc.Submit(context.Background(), in)

	appErr, ok := common.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Contains(t, appErr.Fields, "message")
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_SMSFailureKeepsLead(t *testing.T) {
	f := newFixture(true)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.sms.On("SendSMS", brokerPhone, mock.Anything).Return("", errors.New("twilio unavailable"))

	lead, err := f.svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.False(t, lead.Notified)
	f.sms.AssertNumberOfCalls(t, "SendSMS", 3)
	f.repo.AssertNotCalled(t, "MarkNotified", mock.Anything, mock.Anything)
	assert.Equal(t, []string{events.LeadReceived}, f.pub.types)
}

func TestSubmit_PermanentSMSFailureIsNotRetried(t *testing.T) {
	f := newFixture(true)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.sms.On("SendSMS", brokerPhone, mock.Anything).Return("", resilience.ErrPermanent)

	_, err := f.svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	f.sms.AssertNumberOfCalls(t, "SendSMS", 1)
}

func TestSubmit_WithoutSMS(t *testing.T) {
	f := newFixture(false)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := f.svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.False(t, lead.Notified)
	assert.False(t, f.svc.NotificationsEnabled())
	f.sms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything)
}

func TestSubmit_RepositoryError(t *testing.T) {
	f := newFixture(true)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := f.svc.Submit(context.Background(), validInput())

	appErr, ok := common.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	f.sms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything)
	assert.Empty(t, f.pub.types)
}

func TestList(t *testing.T) {
	f := newFixture(false)
	f.repo.On("List", mock.Anything, 20, 0).Return(nil, 0, nil)

	list, total, err := f.svc.List(context.Background(), 20, 0)

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Zero(t, total)
}
