package site

import (
	"github.com/leandrocorretor/realty/pkg/catalog"
	"github.com/leandrocorretor/realty/pkg/i18n"
)

// HeroIntervalMS is how long each hero image stays on screen
const HeroIntervalMS = 5000

// Content is the localized storefront copy
type Content struct {
	Language  string          `json:"language"`
	Languages []i18n.Language `json:"languages"`
	LogoURL   string          `json:"logo_url"`
	Nav       Nav             `json:"nav"`
	Hero      Hero            `json:"hero"`
	Featured  FeaturedLabels  `json:"featured"`
	About     About           `json:"about"`
	Contact   Contact         `json:"contact"`
	Lead      LeadLabels      `json:"lead"`
}

// Nav holds header labels
type Nav struct {
	Home           string `json:"home"`
	About          string `json:"about"`
	Contact        string `json:"contact"`
	BrokerArea     string `json:"broker_area"`
	SelectLanguage string `json:"select_language"`
}

// Hero is the rotating banner at the top of the storefront
type Hero struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	CTA        string   `json:"cta"`
	Images     []string `json:"images"`
	IntervalMS int      `json:"interval_ms"`
}

// FeaturedLabels holds the featured carousel and filter bar labels
type FeaturedLabels struct {
	Title        string `json:"title"`
	EmptyCatalog string `json:"empty_catalog"`
	None         string `json:"none"`
	Type         string `json:"type"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Price        string `json:"price"`
	All          string `json:"all"`
	Apply        string `json:"apply"`
	Clear        string `json:"clear"`
	Interested   string `json:"interested"`
}

// Card is one "why choose me" tile
type Card struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// About is the broker presentation section
type About struct {
	Name        string   `json:"name"`
	Creci       string   `json:"creci"`
	PhotoURL    string   `json:"photo_url"`
	Paragraphs  []string `json:"paragraphs"`
	WhyChooseMe string   `json:"why_choose_me"`
	Cards       []Card   `json:"cards"`
	ContactMe   string   `json:"contact_me"`
}

// Contact is the footer
type Contact struct {
	Title         string `json:"title"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	InstagramURL  string `json:"instagram_url"`
	FacebookURL   string `json:"facebook_url"`
	LinkedInURL   string `json:"linkedin_url"`
	LocationTitle string `json:"location_title"`
	Address       string `json:"address"`
	MapURL        string `json:"map_url"`
	WhatsAppLabel string `json:"whatsapp_label"`
	WhatsAppURL   string `json:"whatsapp_url"`
	Copyright     string `json:"copyright"`
}

// LeadLabels holds the contact form labels
type LeadLabels struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Send    string `json:"send"`
	Thanks  string `json:"thanks"`
}

// Option is a value/label pair for a select input
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog holds the reference lists the listing forms offer
type Catalog struct {
	States       []catalog.State     `json:"states"`
	TypeGroups   []catalog.TypeGroup `json:"type_groups"`
	Categories   []Option            `json:"categories"`
	PriceOptions []Option            `json:"price_options"`
}
