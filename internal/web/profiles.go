package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"content_studio/internal/view"
)

// profilePage is the part of view.ProfilePage the handlers drive, for
// either profile kind.
type profilePage interface {
	Load(ctx context.Context) error
	BeginEdit(id int64) bool
	Bind(form *view.ProfileForm, submitted func(key string) string, seed string)
	Generate(ctx context.Context, form *view.ProfileForm)
	Save(ctx context.Context, form *view.ProfileForm) bool
	Delete(ctx context.Context, id int64, confirm view.Confirm) bool
	CreateForm() *view.ProfileForm
	EditingForm() *view.ProfileForm
	Text(suffix string) string
	Report() *view.Feedback
}

type profileHandlers struct {
	h       *Handlers
	newPage func() profilePage
}

func (p *profileHandlers) register(r gin.IRouter, base string) {
	r.GET(base, p.list)
	r.POST(base, p.create)
	r.POST(base+"/:id", p.update)
	r.POST(base+"/:id/delete", p.delete)
}

func (p *profileHandlers) render(c *gin.Context, page profilePage) {
	p.h.render(c, http.StatusOK, "profiles", page.Text("heading"), page.Report(), page)
}

func (p *profileHandlers) list(c *gin.Context) {
	var q profileQuery
	if !p.h.bindQuery(c, &q) {
		return
	}
	editID, _ := parseID(q.Edit)

	page := p.newPage()
	if err := page.Load(c.Request.Context()); err == nil {
		if editID != nil {
			page.BeginEdit(*editID)
		}
	}
	p.render(c, page)
}

// apply runs the submitted form action: AI fill or save.
func (p *profileHandlers) apply(c *gin.Context, page profilePage, form *view.ProfileForm) {
	page.Bind(form, c.PostForm, c.PostForm("seed_text"))

	ctx := c.Request.Context()
	if c.PostForm("action") == "generate" {
		page.Generate(ctx, form)
		return
	}
	page.Save(ctx, form)
}

func (p *profileHandlers) create(c *gin.Context) {
	page := p.newPage()
	if err := page.Load(c.Request.Context()); err == nil {
		p.apply(c, page, page.CreateForm())
	}
	p.render(c, page)
}

func (p *profileHandlers) update(c *gin.Context) {
	id, ok := p.h.paramID(c, "id")
	if !ok {
		return
	}
	page := p.newPage()
	if err := page.Load(c.Request.Context()); err == nil {
		if !page.BeginEdit(id) {
			p.h.NotFound(c)
			return
		}
		p.apply(c, page, page.EditingForm())
	}
	p.render(c, page)
}

func (p *profileHandlers) delete(c *gin.Context) {
	id, ok := p.h.paramID(c, "id")
	if !ok {
		return
	}
	page := p.newPage()
	if err := page.Load(c.Request.Context()); err == nil {
		page.Delete(c.Request.Context(), id, confirmed(c))
	}
	p.render(c, page)
}
