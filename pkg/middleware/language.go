package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"golang.org/x/text/language"
)

const (
	// LanguageKey is the gin context key holding the resolved language code
	LanguageKey = "lang"
	// LanguageCookie remembers an explicit language choice
	LanguageCookie = "lang"
)

var languageMatcher = newLanguageMatcher()

func newLanguageMatcher() language.Matcher {
	tags := make([]language.Tag, 0, len(i18n.Languages))
	for _, l := range i18n.Languages {
		tags = append(tags, language.Make(l.Code))
	}
	return language.NewMatcher(tags)
}

// Language resolves the storefront language from ?lang=, the lang cookie,
// then Accept-Language, falling back to defaultLang.
// An explicit ?lang= choice is remembered in a cookie.
func Language(defaultLang string) gin.HandlerFunc {
	if !i18n.IsSupported(defaultLang) {
		defaultLang = i18n.DefaultLang
	}

	return func(c *gin.Context) {
		lang := ""

		if q := c.Query("lang"); i18n.IsSupported(q) {
			lang = q
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(LanguageCookie, q, 365*24*3600, "/", "", false, false)
		} else if ck, err := c.Cookie(LanguageCookie); err == nil && i18n.IsSupported(ck) {
			lang = ck
		} else if header := c.GetHeader("Accept-Language"); header != "" {
			lang = MatchLanguage(header, defaultLang)
		}

		if lang == "" {
			lang = defaultLang
		}

		c.Set(LanguageKey, lang)
		c.Request = c.Request.WithContext(i18n.WithLanguage(c.Request.Context(), lang))
		c.Next()
	}
}

// MatchLanguage picks the best supported language for an Accept-Language header
func MatchLanguage(acceptLanguage, defaultLang string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return defaultLang
	}

	_, idx, confidence := languageMatcher.Match(prefs...)
	if confidence == language.No {
		return defaultLang
	}
	return i18n.Languages[idx].Code
}

// GetLanguage returns the language resolved by Language, or the default
func GetLanguage(c *gin.Context) string {
	if v, ok := c.Get(LanguageKey); ok {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return i18n.DefaultLang
}
