package site

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/leandrocorretor/realty/internal/properties"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"github.com/leandrocorretor/realty/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testSite() config.SiteConfig {
	return config.SiteConfig{
		BrokerName: "Leandro Buscarioli Colares",
		Creci:      "CRECI-SP 283775F",
		Phone:      "(11) 99186-6739",
		WhatsApp:   "+55 (11) 99186-6739",
		Email:      "leco@example.com",
		Instagram:  "@lecocorretor",
		Facebook:   "corretorleco",
		LinkedIn:   "https://www.linkedin.com/in/leandro-buscarioli",
		HeroImages: []string{"https://img/1.jpg", "https://img/2.jpg"},
	}
}

func newService(t *testing.T) (*Service, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = db.Close() })
	svc := NewService(testSite(), redis.Wrap(db))
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc, mock
}

func TestContent_Languages(t *testing.T) {
	svc, _ := newService(t)

	for _, lang := range []string{"pt", "en", "es", "fr", "de", "it"} {
		t.Run(lang, func(t *testing.T) {
			c := svc.Content(lang)
			assert.Equal(t, lang, c.Language)
			assert.Equal(t, i18n.Translate("hero.title", lang), c.Hero.Title)
			assert.Len(t, c.About.Paragraphs, 4)
			assert.Contains(t, c.About.Paragraphs[0], "Leandro Buscarioli Colares")
			assert.Len(t, c.About.Cards, 3)
		})
	}
}

func TestContent_UnknownLanguageFallsBack(t *testing.T) {
	svc, _ := newService(t)

	c := svc.Content("ja")

	assert.Equal(t, "pt", c.Language)
	assert.Equal(t, i18n.Translate("nav.home", "pt"), c.Nav.Home)
}

func TestContent_Details(t *testing.T) {
	svc, _ := newService(t)

	c := svc.Content("en")

	assert.Equal(t, HeroIntervalMS, c.Hero.IntervalMS)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, c.Hero.Images)
	assert.Equal(t, "https://www.instagram.com/lecocorretor", c.Contact.InstagramURL)
	assert.Equal(t, "https://www.facebook.com/corretorleco", c.Contact.FacebookURL)
	assert.Equal(t, "https://www.linkedin.com/in/leandro-buscarioli", c.Contact.LinkedInURL)
	assert.Equal(t, "https://wa.me/5511991866739", c.Contact.WhatsAppURL)
	assert.Equal(t, "© 2025 Leandro Buscarioli Colares - CRECI-SP 283775F", c.Contact.Copyright)
	assert.Len(t, c.Languages, 6)
}

func TestWhatsAppLink(t *testing.T) {
	svc, _ := newService(t)

	assert.Equal(t, "https://wa.me/5511991866739", svc.WhatsAppLink(""))
	assert.Equal(t, "https://wa.me/5511991866739?text=Ol%C3%A1+tudo+bem", svc.WhatsAppLink("Olá tudo bem"))
}

func TestVisits(t *testing.T) {
	svc, mock := newService(t)
	mock.ExpectIncr(visitsKey).SetVal(11)
	mock.ExpectGet(visitsKey).SetVal("11")

	n, err := svc.Visit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)

	n, err = svc.Visits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalog(t *testing.T) {
	svc, _ := newService(t)

	cat := svc.Catalog("pt")

	assert.Len(t, cat.States, 27)
	assert.NotEmpty(t, cat.TypeGroups)
	assert.Equal(t, []Option{
		{Value: "venda", Label: i18n.Translate("category.venda", "pt")},
		{Value: "aluguel", Label: i18n.Translate("category.aluguel", "pt")},
	}, cat.Categories)
	require.Len(t, cat.PriceOptions, len(properties.PriceOptions))
	assert.Equal(t, "Até R$ 200.000,00", cat.PriceOptions[0].Label)
	assert.Equal(t, "R$ 200.001,00 - R$ 400.000,00", cat.PriceOptions[1].Label)
	assert.Equal(t, "Acima de R$ 600.000,00", cat.PriceOptions[3].Label)
}

func TestHandler_Routes(t *testing.T) {
	svc, mock := newService(t)
	r := gin.New()
	r.Use(middleware.Language("pt"))
	NewHandler(svc).RegisterRoutes(r)

	t.Run("content honours lang query", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/site/content?lang=de", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data Content `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "de", resp.Data.Language)
	})

	t.Run("catalog", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/site/catalog", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("record visit", func(t *testing.T) {
		mock.ExpectIncr(visitsKey).SetVal(3)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/site/visits", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"visits":3`)
	})

	t.Run("counter down", func(t *testing.T) {
		mock.ExpectGet(visitsKey).SetErr(errors.New("connection refused"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/site/visits", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("whatsapp", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/site/whatsapp?text=oi", nil))
		assert.Contains(t, w.Body.String(), "https://wa.me/5511991866739?text=oi")
	})
}
