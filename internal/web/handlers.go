package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
	"content_studio/internal/view"
)

type Handlers struct {
	env       *view.Env
	api       view.Backend
	activity  view.ActivityLog
	pageSize  int
	maxUpload int64
	logger    *slog.Logger
}

func (h *Handlers) paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		h.renderError(c, http.StatusBadRequest, h.env.L.T("common.bad_id"))
		return 0, false
	}
	return id, true
}

// bindForm decodes the submitted form into dst. A malformed form renders a
// bad request page and sends nothing to the content API.
func (h *Handlers) bindForm(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		h.logger.Warn("bind form", "request_id", c.GetString(requestIDKey), "path", c.FullPath(), "error", err)
		h.renderError(c, http.StatusBadRequest, h.env.L.T("common.bad_form"))
		return false
	}
	return true
}

func (h *Handlers) bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		h.renderError(c, http.StatusBadRequest, h.env.L.T("common.bad_id"))
		return false
	}
	return true
}

func (h *Handlers) ListProjects(c *gin.Context) {
	page := view.NewProjectsPage(h.env, h.api)
	_ = page.Load(c.Request.Context())
	h.renderProjects(c, page)
}

func (h *Handlers) CreateProject(c *gin.Context) {
	var form projectForm
	if !h.bindForm(c, &form) {
		return
	}
	page := view.NewProjectsPage(h.env, h.api)
	ctx := c.Request.Context()

	if project, ok := page.Create(ctx, form.input()); ok {
		c.Redirect(http.StatusSeeOther, "/projects/"+strconv.FormatInt(project.ID, 10))
		return
	}
	_ = page.Load(ctx)
	h.renderProjects(c, page)
}

func (h *Handlers) DeleteProject(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	page := view.NewProjectsPage(h.env, h.api)
	ctx := c.Request.Context()

	if err := page.Load(ctx); err == nil {
		page.Delete(ctx, id, confirmed(c))
	}
	h.renderProjects(c, page)
}

func (h *Handlers) renderProjects(c *gin.Context, page *view.ProjectsPage) {
	h.render(c, http.StatusOK, "projects", h.env.L.T("projects.heading"), page.Report(), page)
}

// withProject loads the detail page and hands it to act unless the load
// failed. The page is rendered either way.
func (h *Handlers) withProject(c *gin.Context, act func(d *view.ProjectDetail)) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	d := view.NewProjectDetail(h.env, h.api, id)
	if err := d.Load(c.Request.Context()); err != nil {
		status := http.StatusBadGateway
		if d.NotFound {
			status = http.StatusNotFound
		}
		h.renderError(c, status, d.Error)
		return
	}
	if act != nil {
		act(d)
	}
	h.render(c, http.StatusOK, "project", d.Project.Name, d.Report(), d)
}

func (h *Handlers) ShowProject(c *gin.Context) {
	var q projectQuery
	if !h.bindQuery(c, &q) {
		return
	}
	postID, _ := parseID(q.Post)
	articleID, _ := parseID(q.Article)

	h.withProject(c, func(d *view.ProjectDetail) {
		if q.Edit == "meta" {
			d.BeginMetaEdit()
		}
		if postID != nil {
			if row, ok := d.Post(*postID); ok {
				row.Open(view.ParsePostMode(q.Mode))
			}
		}
		if articleID != nil {
			if row, ok := d.Article(*articleID); ok {
				row.BeginEdit()
			}
		}
	})
}

func (h *Handlers) UpdateProjectMeta(c *gin.Context) {
	var form projectForm
	if !h.bindForm(c, &form) {
		return
	}
	h.withProject(c, func(d *view.ProjectDetail) {
		d.SaveMeta(c.Request.Context(), form.input())
	})
}

func (h *Handlers) UpdateProjectSummary(c *gin.Context) {
	var form summaryForm
	if !h.bindForm(c, &form) {
		return
	}
	h.withProject(c, func(d *view.ProjectDetail) {
		d.SaveSummary(c.Request.Context(), form.ResearchSummary)
	})
}

// withGeneration binds the generation panel and applies it before act.
func (h *Handlers) withGeneration(c *gin.Context, act func(d *view.ProjectDetail)) {
	var form generationForm
	if !h.bindForm(c, &form) {
		return
	}
	characterID, errC := parseID(form.CharacterID)
	personaID, errP := parseID(form.TargetPersonaID)
	if errC != nil || errP != nil {
		h.renderError(c, http.StatusBadRequest, h.env.L.T("common.bad_form"))
		return
	}
	h.withProject(c, func(d *view.ProjectDetail) {
		d.Select(characterID, personaID, form.Language)
		act(d)
	})
}

func (h *Handlers) GeneratePosts(c *gin.Context) {
	h.withGeneration(c, func(d *view.ProjectDetail) {
		d.GeneratePosts(c.Request.Context())
	})
}

func (h *Handlers) GenerateNoteArticle(c *gin.Context) {
	h.withGeneration(c, func(d *view.ProjectDetail) {
		d.GenerateNoteArticle(c.Request.Context())
	})
}

// withPost runs act on the post row named by :postID.
func (h *Handlers) withPost(c *gin.Context, act func(d *view.ProjectDetail, row *view.PostRow)) {
	postID, ok := h.paramID(c, "postID")
	if !ok {
		return
	}
	h.withProject(c, func(d *view.ProjectDetail) {
		row, ok := d.Post(postID)
		if !ok {
			d.Alert(h.env.L.T("common.not_found"))
			return
		}
		act(d, row)
	})
}

func (h *Handlers) UpdatePostContent(c *gin.Context) {
	var form postContentForm
	if !h.bindForm(c, &form) {
		return
	}
	h.withPost(c, func(_ *view.ProjectDetail, row *view.PostRow) {
		row.SaveContent(c.Request.Context(), form.Content)
	})
}

func (h *Handlers) SchedulePost(c *gin.Context) {
	var form scheduleForm
	if !h.bindForm(c, &form) {
		return
	}
	h.withPost(c, func(d *view.ProjectDetail, row *view.PostRow) {
		at, err := view.ParseScheduleInput(form.ScheduledAt, form.ScheduledAtUTC, h.env.Location)
		if err != nil {
			row.Open(view.ModeScheduling)
			d.Alert(h.env.L.T("post.schedule_invalid"))
			return
		}
		row.Schedule(c.Request.Context(), at)
	})
}

func (h *Handlers) PostNow(c *gin.Context) {
	h.withPost(c, func(_ *view.ProjectDetail, row *view.PostRow) {
		row.PostNow(c.Request.Context(), confirmed(c))
	})
}

func (h *Handlers) GenerateMediaPrompts(c *gin.Context) {
	h.withPost(c, func(_ *view.ProjectDetail, row *view.PostRow) {
		row.GenerateMediaPrompts(c.Request.Context())
	})
}

func (h *Handlers) UploadPostImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	h.withPost(c, func(d *view.ProjectDetail, row *view.PostRow) {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			h.logger.Warn("read uploaded image", "request_id", c.GetString(requestIDKey), "error", err)
			row.Open(view.ModeUploading)
			d.Alert(h.env.L.T("post.upload_failed"))
			return
		}
		defer file.Close()

		row.UploadImage(c.Request.Context(), domain.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	})
}

func (h *Handlers) DeletePost(c *gin.Context) {
	postID, ok := h.paramID(c, "postID")
	if !ok {
		return
	}
	h.withProject(c, func(d *view.ProjectDetail) {
		d.DeletePost(c.Request.Context(), postID, confirmed(c))
	})
}

func (h *Handlers) UpdateArticle(c *gin.Context) {
	articleID, ok := h.paramID(c, "articleID")
	if !ok {
		return
	}
	var form articleForm
	if !h.bindForm(c, &form) {
		return
	}
	h.withProject(c, func(d *view.ProjectDetail) {
		row, ok := d.Article(articleID)
		if !ok {
			d.Alert(h.env.L.T("common.not_found"))
			return
		}
		row.Save(c.Request.Context(), form.Title, form.Content)
	})
}

func (h *Handlers) DeleteArticle(c *gin.Context) {
	articleID, ok := h.paramID(c, "articleID")
	if !ok {
		return
	}
	h.withProject(c, func(d *view.ProjectDetail) {
		d.DeleteArticle(c.Request.Context(), articleID, confirmed(c))
	})
}

func (h *Handlers) ShowSettings(c *gin.Context) {
	page := view.NewSettingsPage(h.env, h.api)
	_ = page.Load(c.Request.Context())
	h.render(c, http.StatusOK, "settings", h.env.L.T("settings.heading"), page.Report(), page)
}

// SaveSettings writes the submitted prompts as is; nothing is loaded first.
func (h *Handlers) SaveSettings(c *gin.Context) {
	var form settingsForm
	if !h.bindForm(c, &form) {
		return
	}
	page := view.NewSettingsPage(h.env, h.api)
	page.Save(c.Request.Context(), form.PostPrompt, form.NotePrompt)
	h.render(c, http.StatusOK, "settings", h.env.L.T("settings.heading"), page.Report(), page)
}

func (h *Handlers) ShowActivity(c *gin.Context) {
	page := view.NewActivityPage(h.env, h.activity, h.pageSize)
	_ = page.Load(c.Request.Context())
	h.render(c, http.StatusOK, "activity", h.env.L.T("activity.heading"), page.Report(), page)
}
