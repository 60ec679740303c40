package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"content_studio/internal/view"
)

// Deps are the collaborators of the console's handlers.
type Deps struct {
	Env     *view.Env
	Backend view.Backend
	// Activity is nil when the journal is disabled; /activity is then not served.
	Activity         view.ActivityLog
	ActivityPageSize int
	MaxUploadBytes   int64
	Logger           *slog.Logger
}

// NewRouter configures all routes and middleware.
func NewRouter(deps Deps) (*gin.Engine, error) {
	tmpl, err := parseTemplates(deps.Env)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(deps.Logger), Metrics())
	r.SetHTMLTemplate(tmpl)

	h := &Handlers{
		env:       deps.Env,
		api:       deps.Backend,
		activity:  deps.Activity,
		pageSize:  deps.ActivityPageSize,
		maxUpload: deps.MaxUploadBytes,
		logger:    deps.Logger.With("component", "web"),
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", h.ListProjects)
	projects := r.Group("/projects")
	{
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.ShowProject)
		projects.POST("/:id/delete", h.DeleteProject)
		projects.POST("/:id/meta", h.UpdateProjectMeta)
		projects.POST("/:id/summary", h.UpdateProjectSummary)
		projects.POST("/:id/generate-posts", h.GeneratePosts)
		projects.POST("/:id/generate-note-article", h.GenerateNoteArticle)

		projects.POST("/:id/posts/:postID/content", h.UpdatePostContent)
		projects.POST("/:id/posts/:postID/schedule", h.SchedulePost)
		projects.POST("/:id/posts/:postID/post-now", h.PostNow)
		projects.POST("/:id/posts/:postID/media-prompts", h.GenerateMediaPrompts)
		projects.POST("/:id/posts/:postID/image", h.UploadPostImage)
		projects.POST("/:id/posts/:postID/delete", h.DeletePost)

		projects.POST("/:id/articles/:articleID", h.UpdateArticle)
		projects.POST("/:id/articles/:articleID/delete", h.DeleteArticle)
	}

	characters := &profileHandlers{h: h, newPage: func() profilePage {
		return view.NewProfilePage(h.env, view.CharacterProfiles(h.api))
	}}
	characters.register(r, "/characters")

	targets := &profileHandlers{h: h, newPage: func() profilePage {
		return view.NewProfilePage(h.env, view.TargetPersonaProfiles(h.api))
	}}
	targets.register(r, "/targets")

	r.GET("/settings", h.ShowSettings)
	r.POST("/settings", h.SaveSettings)

	if deps.Activity != nil {
		r.GET("/activity", h.ShowActivity)
	}

	r.NoRoute(h.NotFound)

	return r, nil
}
