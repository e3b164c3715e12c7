package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/models"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageStorefront = "storefront"
	pageLogin      = "login"
	pageDashboard  = "dashboard"
	pageForm       = "form"
)

// parsePages parses every page together with the shared layout
func parsePages(funcs template.FuncMap) map[string]*template.Template {
	pages := map[string]*template.Template{}
	for _, name := range []string{pageStorefront, pageLogin, pageDashboard, pageForm} {
		pages[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+name+".html"))
	}
	return pages
}

func baseFuncs() template.FuncMap {
	return template.FuncMap{
		"t": func(lang, key string, args ...interface{}) string {
			return i18n.Translate(key, lang, args...)
		},
		"brl": i18n.FormatBRL,
		"area": func(lang string, v float64) string {
			return i18n.FormatDecimal(v, lang)
		},
		"inc": func(i int) int { return i + 1 },
		"first": func(list []string) string {
			if len(list) == 0 {
				return ""
			}
			return list[0]
		},
		"num": func(v float64) string {
			if v == 0 {
				return ""
			}
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
	}
}

// langLink is one entry of the language switcher
type langLink struct {
	i18n.Language
	URL    string
	Active bool
}

// layoutData is shared by every page
type layoutData struct {
	Lang      string
	Languages []langLink
	Title     string
	Admin     *models.Admin
}

func newLayout(c *gin.Context, lang, title string, admin *models.Admin) layoutData {
	links := make([]langLink, 0, len(i18n.Languages))
	for _, l := range i18n.Languages {
		q := c.Request.URL.Query()
		q.Set("lang", l.Code)
		links = append(links, langLink{
			Language: l,
			URL:      c.Request.URL.Path + "?" + q.Encode(),
			Active:   l.Code == lang,
		})
	}
	return layoutData{Lang: lang, Languages: links, Title: title, Admin: admin}
}

// render executes the page into a buffer so template errors never produce half a page
func (h *Handler) render(c *gin.Context, status int, page string, data interface{}) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.WithContext(c.Request.Context()).Error("failed to render page", zap.String("page", page), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
