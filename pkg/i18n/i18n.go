// Package i18n provides storefront string localization.
// Language resolution order: explicit choice, then browser preference, then "pt".
// Translations are compiled into the binary.
package i18n

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Fallback language used when a key or language is not found.
const DefaultLang = "pt"

// Language describes a selectable storefront language
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Languages lists the supported languages in the order the switcher shows them.
// The first entry is the default.
var Languages = []Language{
	{Code: "pt", Name: "Português", Flag: "🇧🇷"},
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Español", Flag: "🇪🇸"},
	{Code: "fr", Name: "Français", Flag: "🇫🇷"},
	{Code: "de", Name: "Deutsch", Flag: "🇩🇪"},
	{Code: "it", Name: "Italiano", Flag: "🇮🇹"},
}

// IsSupported reports whether lang has a translation table
func IsSupported(lang string) bool {
	for _, l := range Languages {
		if l.Code == lang {
			return true
		}
	}
	return false
}

// printers holds one catalog-backed printer per supported language
var printers = buildPrinters()

// buildPrinters registers the translation tables in an x/text catalog.
// A key missing in a language is registered with its Portuguese text.
func buildPrinters() map[string]*message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.Make(DefaultLang)))
	for key, langs := range translations {
		for _, l := range Languages {
			msg, ok := langs[l.Code]
			if !ok {
				msg = langs[DefaultLang]
			}
			if err := b.SetString(language.Make(l.Code), key, msg); err != nil {
				panic(fmt.Sprintf("i18n: register %s/%s: %v", l.Code, key, err))
			}
		}
	}

	out := make(map[string]*message.Printer, len(Languages))
	for _, l := range Languages {
		out[l.Code] = message.NewPrinter(language.Make(l.Code), message.Catalog(b))
	}
	return out
}

// Printer returns the message printer for lang, or the Portuguese one
func Printer(lang string) *message.Printer {
	if p, ok := printers[lang]; ok {
		return p
	}
	return printers[DefaultLang]
}

// Translate returns a localized string for key in lang, formatting args
// with the language's number conventions. Unsupported languages use
// Portuguese; unknown keys render as themselves so gaps are visible.
func Translate(key, lang string, args ...interface{}) string {
	if _, ok := translations[key]; !ok {
		return key
	}
	return Printer(lang).Sprintf(key, args...)
}

// Translator binds Translate to a language, for templates
type Translator struct {
	Lang string
}

// T translates key in the bound language
func (t Translator) T(key string, args ...interface{}) string {
	return Translate(key, t.Lang, args...)
}

type ctxKey struct{}

// WithLanguage stores lang in ctx
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// FromContext returns the language stored by WithLanguage, or DefaultLang
func FromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(ctxKey{}).(string); ok && IsSupported(lang) {
		return lang
	}
	return DefaultLang
}
