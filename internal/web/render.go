package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
	"content_studio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates(env *view.Env) (*template.Template, error) {
	funcs := template.FuncMap{
		"t":     env.L.T,
		"deref": domain.Deref,
		"field": func(v view.FormValues, key string) string { return v[key] },
		"selected": func(chosen *int64, id int64) bool {
			return chosen != nil && *chosen == id
		},
		"datetime": func(ts *domain.Timestamp) string {
			if ts == nil {
				return ""
			}
			return view.FormatDateTime(ts.Time, env.Location)
		},
		"accept":    func() string { return strings.Join(domain.AcceptedImageTypes, ",") },
		"languages": func() []string { return domain.Languages },
		"durationMs": func(e domain.ActivityEvent) int64 {
			return e.Duration.Milliseconds()
		},
		"dict": dict,
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// dict builds the argument map of a nested template from key/value pairs.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[key] = kv[i+1]
	}
	return m, nil
}

// pageData is what every template receives.
type pageData struct {
	Lang        string
	Title       string
	Nav         []view.NavItem
	Error       string
	Alerts      []string
	Toast       *view.Toast
	ToastMillis int64
	RequestID   string
	Page        any
}

func (h *Handlers) render(c *gin.Context, status int, name, title string, fb *view.Feedback, page any) {
	data := pageData{
		Lang:      h.env.L.Lang(),
		Title:     title,
		Nav:       view.Nav(h.env.L, c.Request.URL.Path, h.activity != nil),
		RequestID: c.GetString(requestIDKey),
		Alerts:    []string{},
		Page:      page,
	}
	if fb != nil {
		data.Error = fb.Error
		if fb.Alerts != nil {
			data.Alerts = fb.Alerts
		}
		if fb.Toast != nil {
			data.Toast = fb.Toast
			data.ToastMillis = fb.Toast.MillisLeft(h.env.Now())
		}
	}
	c.HTML(status, name, data)
}

func (h *Handlers) renderError(c *gin.Context, status int, message string) {
	h.render(c, status, "error", message, &view.Feedback{Error: message}, nil)
}

// confirmed reads the answer the browser's confirm dialog left in the form.
func confirmed(c *gin.Context) view.Confirm {
	answer := c.PostForm("confirmed") == "yes"
	return func(string) bool { return answer }
}

func (h *Handlers) NotFound(c *gin.Context) {
	h.renderError(c, http.StatusNotFound, h.env.L.T("common.not_found"))
}
