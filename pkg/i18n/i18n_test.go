package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_Portuguese(t *testing.T) {
	result := Translate("featured.title", "pt")
	assert.Equal(t, "Destaques", result)
}

func TestTranslate_English(t *testing.T) {
	result := Translate("hero.speak_to_me", "en")
	assert.Equal(t, "Talk to Me", result)
}

func TestTranslate_German(t *testing.T) {
	result := Translate("footer.location", "de")
	assert.Equal(t, "Standort", result)
}

func TestTranslate_FallsBackToPortuguese_UnknownLang(t *testing.T) {
	result := Translate("featured.title", "ja")
	assert.Equal(t, "Destaques", result)
}

func TestTranslate_FallsBackToPortuguese_MissingLang(t *testing.T) {
	result := Translate("auth.denied", "es")
	assert.Equal(t, "Acesso negado – somente credenciais autorizadas conseguem acessar a página.", result)
}

func TestTranslate_EmptyLang_UsesPortuguese(t *testing.T) {
	result := Translate("nav.about", "")
	assert.Equal(t, "Sobre Mim", result)
}

func TestTranslate_UnknownKey_ReturnsKey(t *testing.T) {
	result := Translate("does.not.exist", "en")
	assert.Equal(t, "does.not.exist", result)
}

func TestTranslate_WithArgs(t *testing.T) {
	assert.Equal(t, "Visits: 42", Translate("site.visits", "en", 42))
	assert.Equal(t, "3 quartos", Translate("property.bedrooms", "pt", 3))
}

func TestTranslator(t *testing.T) {
	tr := Translator{Lang: "es"}
	assert.Equal(t, "Ubicación", tr.T("footer.location"))
}

func TestEveryKeyHasPortuguese(t *testing.T) {
	for key, langs := range translations {
		_, ok := langs[DefaultLang]
		assert.True(t, ok, "key %q has no %q translation", key, DefaultLang)
	}
}

func TestStorefrontKeysCoverAllLanguages(t *testing.T) {
	keys := []string{"hero.title", "featured.none", "about.card3.text", "filter.clear", "category.aluguel"}
	for _, key := range keys {
		for _, lang := range Languages {
			_, ok := translations[key][lang.Code]
			assert.True(t, ok, "key %q missing %q", key, lang.Code)
		}
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("pt"))
	assert.True(t, IsSupported("it"))
	assert.False(t, IsSupported("ja"))
	assert.Equal(t, DefaultLang, Languages[0].Code)
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{1234.5, "R$ 1.234,50"},
		{350000, "R$ 350.000,00"},
		{1250000.75, "R$ 1.250.000,75"},
		{-99.999, "-R$ 100,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(tt.amount))
	}
}

func TestLanguageContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLang, FromContext(ctx))
	assert.Equal(t, "de", FromContext(WithLanguage(ctx, "de")))
	assert.Equal(t, DefaultLang, FromContext(WithLanguage(ctx, "xx")))
}

func TestTranslate_LocalizesNumbers(t *testing.T) {
	assert.Equal(t, "Visitas: 1.234", Translate("site.visits", "pt", 1234))
	assert.Equal(t, "Visits: 1,234", Translate("site.visits", "en", 1234))
}

func TestPrinter_UnsupportedUsesPortuguese(t *testing.T) {
	assert.Equal(t, "Destaques", Printer("ja").Sprintf("featured.title"))
	assert.Same(t, Printer(DefaultLang), Printer("ja"))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "1.250,5", FormatDecimal(1250.5, "pt"))
	assert.Equal(t, "1,250.5", FormatDecimal(1250.5, "en"))
	assert.Equal(t, "120", FormatDecimal(120, "de"))
	assert.Equal(t, "120 m²", Translate("property.area", "en", FormatDecimal(120, "en")))
}
