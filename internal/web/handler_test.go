package web

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/internal/auth"
	"github.com/leandrocorretor/realty/internal/leads"
	"github.com/leandrocorretor/realty/internal/properties"
	"github.com/leandrocorretor/realty/internal/site"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"github.com/leandrocorretor/realty/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockProperties implements PropertyService for testing
type MockProperties struct {
	mock.Mock
}

func (m *MockProperties) GetFeatured(ctx context.Context, filters properties.Filters) (*properties.FeaturedListing, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.FeaturedListing), args.Error(1)
}

func (m *MockProperties) GetProperties(ctx context.Context, filters *properties.Filters, limit, offset int) ([]properties.Property, int, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]properties.Property), args.Int(1), args.Error(2)
}

func (m *MockProperties) GetProperty(ctx context.Context, id uuid.UUID) (*properties.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.Property), args.Error(1)
}

func (m *MockProperties) AddProperty(ctx context.Context, in *properties.PropertyInput) (*properties.Property, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.Property), args.Error(1)
}

func (m *MockProperties) UpdateProperty(ctx context.Context, id uuid.UUID, in *properties.PropertyInput) (*properties.Property, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*properties.Property), args.Error(1)
}

func (m *MockProperties) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProperties) UploadImages(ctx context.Context, propertyID uuid.UUID, files []*multipart.FileHeader, dataURLs []string) ([]string, error) {
	args := m.Called(ctx, propertyID, files, dataURLs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProperties) DiscardImages(ctx context.Context, urls []string) {
	m.Called(ctx, urls)
}

func (m *MockProperties) StateCounts(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// MockLeads implements LeadService for testing
type MockLeads struct {
	mock.Mock
}

func (m *MockLeads) Submit(ctx context.Context, in *leads.LeadInput) (*leads.Lead, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leads.Lead), args.Error(1)
}

// MockSessions implements SessionService for testing
type MockSessions struct {
	mock.Mock
	bypass bool
}

func (m *MockSessions) VerifySession(ctx context.Context, token string) (*models.Admin, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockSessions) Login(ctx context.Context, credential string) (*auth.Session, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockSessions) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockSessions) BypassEnabled() bool {
	return m.bypass
}

// stubCounter implements site.Counter
type stubCounter struct {
	n   int64
	err error
}

func (s *stubCounter) Incr(context.Context, string) (int64, error) {
	s.n++
	return s.n, s.err
}

func (s *stubCounter) GetInt(context.Context, string) (int64, error) {
	return s.n, s.err
}

const cookieName = "realty_session"

var broker = &models.Admin{Email: "broker@example.com", Name: "Leandro"}

type fixture struct {
	props    *MockProperties
	leads    *MockLeads
	sessions *MockSessions
	router   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		props:    new(MockProperties),
		leads:    new(MockLeads),
		sessions: new(MockSessions),
	}
	siteSvc := site.NewService(config.SiteConfig{
		BrokerName: "Leandro Corretor",
		Creci:      "CRECI 123456-F",
		WhatsApp:   "+55 (13) 99186-6739",
		HeroImages: []string{"/static/hero1.jpg", "/static/hero2.jpg"},
	}, &stubCounter{n: 41})

	f.router = gin.New()
	f.router.Use(middleware.Language("pt"))
	NewHandler(f.props, siteSvc, f.leads, f.sessions, Options{
		GoogleClientID: "client-id.apps.googleusercontent.com",
		Cookie:         auth.CookieOptions{Name: cookieName},
	}).RegisterRoutes(f.router)
	return f
}

// loggedIn makes the session cookie "valid" resolve to the broker
func (f *fixture) loggedIn() {
	f.sessions.On("VerifySession", mock.Anything, "valid").Return(broker, nil)
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "valid"})
	return req
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, path string, fields map[string][]string, files map[string][]byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	for filename, content := range files {
		part, err := mw.CreateFormFile("images", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func sampleListing() *properties.FeaturedListing {
	return &properties.FeaturedListing{
		Properties: []properties.Property{{
			ID:        uuid.New(),
			Title:     "Casa no Centro",
			Category:  "venda",
			Price:     350000,
			Location:  "Centro, Santos - SP",
			Bedrooms:  3,
			Bathrooms: 2,
			Area:      1250.5,
			ImageURLs: []string{"/uploads/a.jpg"},
			CreatedAt: time.Now(),
		}},
		Facets: properties.Facets{Types: []string{"Casa"}, Cities: []string{"Santos"}, Neighborhoods: []string{"Centro"}},
		Total:  1,
	}
}

// ========================================
// STOREFRONT
// ========================================

func TestStorefront_RendersFeaturedListings(t *testing.T) {
	f := newFixture(t)
	f.props.On("GetFeatured", mock.Anything, properties.Filters{Category: "venda", City: "Santos"}).Return(sampleListing(), nil)

	w := f.do(httptest.NewRequest(http.MethodGet, "/?category=venda&city=Santos&lang=en", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Casa no Centro")
	assert.Contains(t, body, "R$ 350.000,00")
	assert.Contains(t, body, "3 bedrooms · 2 bathrooms · 1,250.5 m²")
	assert.NotContains(t, body, "%d")
	// html/template escapes '+' inside attribute values
	assert.Contains(t, body, "https://wa.me/5513991866739?text=Casa&#43;no&#43;Centro")
	assert.Contains(t, body, `<html lang="en">`)
	f.props.AssertExpectations(t)
}

func TestStorefront_DropsMalformedFilters(t *testing.T) {
	f := newFixture(t)
	f.props.On("GetFeatured", mock.Anything, properties.Filters{}).Return(&properties.FeaturedListing{}, nil)

	w := f.do(httptest.NewRequest(http.MethodGet, "/?price=cheap", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	f.props.AssertExpectations(t)
}

func TestStorefront_ServiceError(t *testing.T) {
	f := newFixture(t)
	f.props.On("GetFeatured", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := f.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubmitContact(t *testing.T) {
	f := newFixture(t)
	f.leads.On("Submit", mock.Anything, mock.MatchedBy(func(in *leads.LeadInput) bool {
		return in.Name == "Maria" && in.Phone == "13991234567"
	})).Return(&leads.Lead{ID: uuid.New()}, nil)

	w := f.do(postForm("/contact", url.Values{"name": {"Maria"}, "phone": {"13991234567"}, "message": {"Olá"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?sent=1#contact", w.Header().Get("Location"))
}

func TestSubmitContact_ValidationErrorsRenderInline(t *testing.T) {
	f := newFixture(t)
	f.leads.On("Submit", mock.Anything, mock.Anything).
		Return(nil, common.NewValidationError(map[string]string{"phone": "Informe um telefone válido com DDD."}))
	f.props.On("GetFeatured", mock.Anything, properties.Filters{}).Return(sampleListing(), nil)

	w := f.do(postForm("/contact", url.Values{"name": {"Maria"}, "phone": {"12"}, "message": {"Olá"}}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Informe um telefone válido com DDD.")
	assert.Contains(t, body, `value="Maria"`)
}

// ========================================
// LOGIN
// ========================================

func TestLoginPage(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("VerifySession", mock.Anything, "").Return(nil, auth.ErrNoSession)

	w := f.do(httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "client-id.apps.googleusercontent.com")
}

func TestLoginPage_RedirectsWhenLoggedIn(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	w := f.do(withSession(httptest.NewRequest(http.MethodGet, "/admin", nil)))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestLogin_SetsCookieAndRedirects(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("Login", mock.Anything, "google-jwt").
		Return(&auth.Session{Token: "session-token", ExpiresAt: time.Now().Add(time.Hour), Admin: broker}, nil)

	w := f.do(postForm("/admin/login", url.Values{"credential": {"google-jwt"}}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), cookieName+"=session-token")
}

func TestLogin_DeniedRendersMessage(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("Login", mock.Anything, "google-jwt").
		Return(nil, common.NewForbiddenError("Acesso negado – somente credenciais autorizadas conseguem acessar a página."))

	w := f.do(postForm("/admin/login", url.Values{"credential": {"google-jwt"}}))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Acesso negado")
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestLogin_MissingCredential(t *testing.T) {
	f := newFixture(t)

	w := f.do(postForm("/admin/login", url.Values{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.sessions.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("Logout", mock.Anything, "valid").Return(nil)

	w := f.do(withSession(httptest.NewRequest(http.MethodPost, "/logout", nil)))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

// ========================================
// DASHBOARD
// ========================================

func TestDashboard_RedirectsToLogin(t *testing.T) {
	f := newFixture(t)
	f.sessions.On("VerifySession", mock.Anything, "").Return(nil, errors.New("no session"))

	w := f.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestDashboard_ListsWithSearchAndState(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	f.props.On("GetProperties", mock.Anything, &properties.Filters{Search: "centro", State: "SP"}, pageSize, pageSize).
		Return(sampleListing().Properties, 21, nil)
	f.props.On("StateCounts", mock.Anything).Return(map[string]int{"SP": 21, "RJ": 2}, nil)

	w := f.do(withSession(httptest.NewRequest(http.MethodGet, "/dashboard?search=centro&state=sp&page=2", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Casa no Centro")
	assert.Contains(t, body, "SP (21)")
	assert.Contains(t, body, "RJ (2)")
	assert.Less(t, strings.Index(body, "RJ (2)"), strings.Index(body, "SP (21)"), "counts follow catalogue order")
	assert.Contains(t, body, "page=1")
	assert.NotContains(t, body, "page=3")
}

func TestDeleteProperty(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	id := uuid.New()
	f.props.On("DeleteProperty", mock.Anything, id).Return(nil)

	w := f.do(withSession(httptest.NewRequest(http.MethodPost, "/dashboard/properties/"+id.String()+"/delete", nil)))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestDeleteProperty_Failure(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	id := uuid.New()
	f.props.On("DeleteProperty", mock.Anything, id).Return(common.NewNotFoundError("property not found", nil))

	w := f.do(withSession(httptest.NewRequest(http.MethodPost, "/dashboard/properties/"+id.String()+"/delete", nil)))

	assert.Equal(t, "/dashboard?error=delete", w.Header().Get("Location"))
}

// ========================================
// PROPERTY FORM
// ========================================

func validFormFields() map[string][]string {
	return map[string][]string{
		"title":         {"Apartamento Gonzaga"},
		"description":   {"Vista para o mar"},
		"type":          {"Apartamento"},
		"category":      {"venda"},
		"price":         {"650.000,00"},
		"neighborhood":  {"Gonzaga"},
		"city":          {"Santos"},
		"state":         {"SP"},
		"bedrooms":      {"3"},
		"bathrooms":     {"2"},
		"area":          {"110,5"},
		"is_featured":   {"1"},
		"image_urls":    {"/uploads/keep.jpg", "/uploads/drop.jpg"},
		"remove_images": {"/uploads/drop.jpg"},
	}
}

func TestCreateProperty_UploadsAndSaves(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	f.props.On("UploadImages", mock.Anything, uuid.Nil, mock.MatchedBy(func(files []*multipart.FileHeader) bool {
		return len(files) == 1 && files[0].Filename == "sala.png"
	}), []string(nil)).Return([]string{"/uploads/new.png"}, nil)
	f.props.On("AddProperty", mock.Anything, mock.MatchedBy(func(in *properties.PropertyInput) bool {
		return in.Price == 650000 && in.Area == 110.5 && in.Bedrooms == 3 && in.IsFeatured &&
			assert.ObjectsAreEqual([]string{"/uploads/keep.jpg", "/uploads/new.png"}, in.ImageURLs)
	})).Return(&properties.Property{ID: uuid.New()}, nil)

	req := multipartRequest(t, "/dashboard/properties", validFormFields(), map[string][]byte{"sala.png": []byte("\x89PNG\r\n\x1a\n")})
	w := f.do(withSession(req))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	f.props.AssertExpectations(t)
}

func TestCreateProperty_InvalidFormSkipsUpload(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	fields := validFormFields()
	fields["title"] = []string{""}
	req := multipartRequest(t, "/dashboard/properties", fields, map[string][]byte{"sala.png": []byte("\x89PNG\r\n\x1a\n")})
	w := f.do(withSession(req))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "O título é obrigatório.")
	assert.Contains(t, body, "Vista para o mar")
	f.props.AssertNotCalled(t, "UploadImages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.props.AssertNotCalled(t, "AddProperty", mock.Anything, mock.Anything)
}

func TestCreateProperty_UploadedPhotosOnlyCountTowardsRequiredImage(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	f.props.On("UploadImages", mock.Anything, uuid.Nil, mock.Anything, []string(nil)).Return([]string{"/uploads/new.png"}, nil)
	f.props.On("AddProperty", mock.Anything, mock.MatchedBy(func(in *properties.PropertyInput) bool {
		return assert.ObjectsAreEqual([]string{"/uploads/new.png"}, in.ImageURLs)
	})).Return(&properties.Property{ID: uuid.New()}, nil)

	fields := validFormFields()
	delete(fields, "image_urls")
	delete(fields, "remove_images")
	req := multipartRequest(t, "/dashboard/properties", fields, map[string][]byte{"sala.png": []byte("\x89PNG\r\n\x1a\n")})
	w := f.do(withSession(req))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	f.props.AssertExpectations(t)
}

func TestCreateProperty_ServiceRejectionDiscardsUploads(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	f.props.On("UploadImages", mock.Anything, uuid.Nil, mock.Anything, []string(nil)).Return([]string{"/uploads/new.png"}, nil)
	f.props.On("AddProperty", mock.Anything, mock.Anything).
		Return(nil, common.NewValidationError(map[string]string{"title": "Título já cadastrado."}))
	f.props.On("DiscardImages", mock.Anything, []string{"/uploads/new.png"}).Return()

	req := multipartRequest(t, "/dashboard/properties", validFormFields(), map[string][]byte{"sala.png": []byte("\x89PNG\r\n\x1a\n")})
	w := f.do(withSession(req))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Título já cadastrado.")
	assert.Contains(t, body, "/uploads/keep.jpg")
	assert.NotContains(t, body, "/uploads/new.png")
	f.props.AssertExpectations(t)
}

func TestCreateProperty_BadNumberSkipsService(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()

	fields := validFormFields()
	fields["price"] = []string{"muito caro"}
	w := f.do(withSession(multipartRequest(t, "/dashboard/properties", fields, nil)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.props.AssertNotCalled(t, "AddProperty", mock.Anything, mock.Anything)
}

func TestCreateProperty_NumbersOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		key   string
	}{
		{"infinite price", "price", "Inf", "form.price.positive"},
		{"price beyond column", "price", "1e15", "form.price.too_large"},
		{"area beyond column", "area", "1.000.000.000,00", "form.area.too_large"},
		{"bedrooms beyond column", "bedrooms", "1000000000000", "form.bedrooms.too_large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.loggedIn()

			fields := validFormFields()
			fields[tt.field] = []string{tt.value}
			w := f.do(withSession(multipartRequest(t, "/dashboard/properties", fields, nil)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), i18n.Translate(tt.key, "pt"))
			f.props.AssertNotCalled(t, "AddProperty", mock.Anything, mock.Anything)
		})
	}
}

func TestEditPropertyForm(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	id := uuid.New()
	f.props.On("GetProperty", mock.Anything, id).Return(&properties.Property{
		ID: id, Title: "Casa no Centro", Type: "Casa", Category: "aluguel", State: "SP",
		ImageURLs: []string{"/uploads/a.jpg", "/uploads/b.jpg"}, MainImageIndex: 1,
	}, nil)

	w := f.do(withSession(httptest.NewRequest(http.MethodGet, "/dashboard/properties/"+id.String()+"/edit", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `action="/dashboard/properties/`+id.String()+`"`)
	assert.Contains(t, body, `value="/uploads/b.jpg" checked`)
}

func TestEditPropertyForm_NotFound(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	id := uuid.New()
	f.props.On("GetProperty", mock.Anything, id).Return(nil, common.NewNotFoundError("property not found", nil))

	w := f.do(withSession(httptest.NewRequest(http.MethodGet, "/dashboard/properties/"+id.String()+"/edit", nil)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProperty(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	id := uuid.New()
	fields := validFormFields()
	fields["main_image"] = []string{"/uploads/keep.jpg"}
	f.props.On("UpdateProperty", mock.Anything, id, mock.MatchedBy(func(in *properties.PropertyInput) bool {
		return len(in.ImageURLs) == 1 && in.MainImageIndex == 0
	})).Return(&properties.Property{ID: id}, nil)

	w := f.do(withSession(multipartRequest(t, "/dashboard/properties/"+id.String(), fields, nil)))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	f.props.AssertExpectations(t)
}

func TestUpdateProperty_RemovingPhotoKeepsCover(t *testing.T) {
	f := newFixture(t)
	f.loggedIn()
	id := uuid.New()
	fields := validFormFields()
	fields["image_urls"] = []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg"}
	fields["main_image"] = []string{"/uploads/c.jpg"}
	fields["remove_images"] = []string{"/uploads/a.jpg"}
	f.props.On("UpdateProperty", mock.Anything, id, mock.MatchedBy(func(in *properties.PropertyInput) bool {
		return assert.ObjectsAreEqual([]string{"/uploads/b.jpg", "/uploads/c.jpg"}, in.ImageURLs) && in.MainImageIndex == 1
	})).Return(&properties.Property{ID: id}, nil)

	w := f.do(withSession(multipartRequest(t, "/dashboard/properties/"+id.String(), fields, nil)))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	f.props.AssertExpectations(t)
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"", 0, true},
		{"350000", 350000, true},
		{"350000.50", 350000.5, true},
		{"350.000,50", 350000.5, true},
		{"R$ 1.200,00", 1200, true},
		{"abc", 0, false},
		{"Inf", 0, false},
		{"-Inf", 0, false},
		{"NaN", 0, false},
		{"1e400", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseDecimal(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
