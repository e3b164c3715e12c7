package site

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/leandrocorretor/realty/internal/properties"
	"github.com/leandrocorretor/realty/pkg/catalog"
	"github.com/leandrocorretor/realty/pkg/config"
	"github.com/leandrocorretor/realty/pkg/i18n"
)

const visitsKey = "site:visits"

// Counter is the persistent visit counter
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	GetInt(ctx context.Context, key string) (int64, error)
}

// Service builds storefront content and tracks visits
type Service struct {
	site    config.SiteConfig
	counter Counter
	now     func() time.Time
}

// NewService creates a new site service
func NewService(site config.SiteConfig, counter Counter) *Service {
	return &Service{site: site, counter: counter, now: time.Now}
}

// Config returns the broker details the service was built with
func (s *Service) Config() config.SiteConfig {
	return s.site
}

// Content returns the storefront copy in lang, falling back to Portuguese
func (s *Service) Content(lang string) *Content {
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLang
	}
	t := i18n.Translator{Lang: lang}

	return &Content{
		Language:  lang,
		Languages: i18n.Languages,
		LogoURL:   s.site.LogoURL,
		Nav: Nav{
			Home:           t.T("nav.home"),
			About:          t.T("nav.about"),
			Contact:        t.T("nav.contact"),
			BrokerArea:     t.T("nav.broker_area"),
			SelectLanguage: t.T("site.select_language"),
		},
		Hero: Hero{
			Title:      t.T("hero.title"),
			Subtitle:   t.T("hero.subtitle"),
			CTA:        t.T("hero.speak_to_me"),
			Images:     s.site.HeroImages,
			IntervalMS: HeroIntervalMS,
		},
		Featured: FeaturedLabels{
			Title:        t.T("featured.title"),
			EmptyCatalog: t.T("featured.empty_catalog"),
			None:         t.T("featured.none"),
			Type:         t.T("filter.type"),
			City:         t.T("filter.city"),
			Neighborhood: t.T("filter.neighborhood"),
			Price:        t.T("filter.price"),
			All:          t.T("filter.all"),
			Apply:        t.T("filter.apply"),
			Clear:        t.T("filter.clear"),
			Interested:   t.T("property.interested"),
		},
		About: About{
			Name:     s.site.BrokerName,
			Creci:    s.site.Creci,
			PhotoURL: s.site.PhotoURL,
			Paragraphs: []string{
				t.T("about.text1", s.site.BrokerName),
				t.T("about.text2"),
				t.T("about.text3"),
				t.T("about.text4"),
			},
			WhyChooseMe: t.T("about.why_choose_me"),
			Cards: []Card{
				{Title: t.T("about.card1.title"), Text: t.T("about.card1.text")},
				{Title: t.T("about.card2.title"), Text: t.T("about.card2.text")},
				{Title: t.T("about.card3.title"), Text: t.T("about.card3.text")},
			},
			ContactMe: t.T("about.contact_me"),
		},
		Contact: Contact{
			Title:         t.T("footer.contact"),
			Phone:         s.site.Phone,
			Email:         s.site.Email,
			InstagramURL:  socialURL("https://www.instagram.com/", s.site.Instagram),
			FacebookURL:   socialURL("https://www.facebook.com/", s.site.Facebook),
			LinkedInURL:   socialURL("https://www.linkedin.com/in/", s.site.LinkedIn),
			LocationTitle: t.T("footer.location"),
			Address:       s.site.Address,
			MapURL:        s.site.MapEmbedURL,
			WhatsAppLabel: t.T("footer.whatsapp"),
			WhatsAppURL:   s.WhatsAppLink(""),
			Copyright:     fmt.Sprintf("© %d %s - %s", s.now().Year(), s.site.BrokerName, s.site.Creci),
		},
		Lead: LeadLabels{
			Name:    t.T("lead.name"),
			Phone:   t.T("lead.phone"),
			Email:   t.T("lead.email"),
			Message: t.T("lead.message"),
			Send:    t.T("lead.send"),
			Thanks:  t.T("lead.thanks"),
		},
	}
}

// WhatsAppLink returns the wa.me chat link for the broker, with an optional prefilled message
func (s *Service) WhatsAppLink(text string) string {
	link := "https://wa.me/" + digits(s.site.WhatsApp)
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}

// Visit counts a storefront visit and returns the new total
func (s *Service) Visit(ctx context.Context) (int64, error) {
	return s.counter.Incr(ctx, visitsKey)
}

// Visits returns the visit total
func (s *Service) Visits(ctx context.Context) (int64, error) {
	return s.counter.GetInt(ctx, visitsKey)
}

// Catalog returns the form reference lists with labels in lang
func (s *Service) Catalog(lang string) *Catalog {
	cats := make([]Option, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		cats = append(cats, Option{Value: c, Label: i18n.Translate("category."+c, lang)})
	}
	prices := make([]Option, 0, len(properties.PriceOptions))
	for _, p := range properties.PriceOptions {
		prices = append(prices, Option{Value: p.Value, Label: PriceLabel(p, lang)})
	}
	return &Catalog{
		States:       catalog.BrazilianStates,
		TypeGroups:   catalog.PropertyTypeGroups,
		Categories:   cats,
		PriceOptions: prices,
	}
}

// PriceLabel renders a price range choice, e.g. "Até R$ 200.000,00"
func PriceLabel(p properties.PriceOption, lang string) string {
	switch {
	case p.Max == 0:
		return i18n.Translate("filter.price_from", lang, i18n.FormatBRL(p.Min-1))
	case p.Min == 0:
		return i18n.Translate("filter.price_up_to", lang, i18n.FormatBRL(p.Max))
	default:
		return i18n.FormatBRL(p.Min) + " - " + i18n.FormatBRL(p.Max)
	}
}

func socialURL(base, handle string) string {
	handle = strings.TrimSpace(handle)
	switch {
	case handle == "":
		return ""
	case strings.HasPrefix(handle, "https://"):
		return handle
	default:
		return base + strings.TrimPrefix(handle, "@")
	}
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
