package view

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"content_studio/internal/backend"
	"content_studio/internal/domain"
)

// Selection is the generation panel's choice of who writes, for whom and
// in which language.
type Selection struct {
	CharacterID     *int64
	TargetPersonaID *int64
	Language        string
}

func (s Selection) request() domain.GenerateRequest {
	return domain.GenerateRequest{
		CharacterID:     s.CharacterID,
		TargetPersonaID: s.TargetPersonaID,
		Language:        s.Language,
	}
}

type ProjectDetail struct {
	Feedback
	env *Env
	api Backend

	ID         int64
	Project    *domain.Project
	Characters []domain.Character
	Personas   []domain.TargetPersona
	Posts      []*PostRow
	Articles   []*NoteRow

	NotFound    bool
	EditingMeta bool
	Meta        domain.ProjectInput
	Summary     string
	Selection   Selection
}

func NewProjectDetail(env *Env, api Backend, id int64) *ProjectDetail {
	return &ProjectDetail{
		env:       env,
		api:       api,
		ID:        id,
		Selection: Selection{Language: domain.LanguageJapanese},
	}
}

// loadError names the resource whose fetch failed the page load.
type loadError struct {
	messageKey string
	err        error
}

func (e *loadError) Error() string { return fmt.Sprintf("%s: %v", e.messageKey, e.err) }
func (e *loadError) Unwrap() error { return e.err }

// Load fetches the project, characters and personas concurrently. Any
// failure fails the whole page.
func (d *ProjectDetail) Load(ctx context.Context) error {
	var (
		project    *domain.Project
		characters []domain.Character
		personas   []domain.TargetPersona
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if project, err = d.api.GetProject(gctx, d.ID); err != nil {
			return &loadError{messageKey: "project.load_failed", err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if characters, err = d.api.ListCharacters(gctx); err != nil {
			return &loadError{messageKey: "project.characters_failed", err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if personas, err = d.api.ListTargetPersonas(gctx); err != nil {
			return &loadError{messageKey: "project.personas_failed", err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		d.env.logFailure("project.load", err)
		var le *loadError
		switch {
		case !errors.As(err, &le):
			d.Error = d.env.L.T("common.unexpected")
		case le.messageKey == "project.load_failed" && backend.IsNotFound(err):
			d.NotFound = true
			d.Error = d.env.L.T("project.not_found")
		default:
			d.Error = d.env.L.T("project.error", describe(err, d.env.L.T(le.messageKey)))
		}
		return err
	}

	d.Project = project
	d.Characters = characters
	d.Personas = personas
	d.Meta = domain.InputOf(project)
	d.Summary = domain.Deref(project.ResearchSummary)

	d.Posts = make([]*PostRow, len(project.Posts))
	for i := range project.Posts {
		d.Posts[i] = newPostRow(d.env, d.api, &d.Feedback, &project.Posts[i])
	}
	d.Articles = make([]*NoteRow, len(project.NoteArticles))
	for i := range project.NoteArticles {
		d.Articles[i] = newNoteRow(d.env, d.api, &d.Feedback, &project.NoteArticles[i])
	}
	return nil
}

func (d *ProjectDetail) BeginMetaEdit() {
	d.Meta = domain.InputOf(d.Project)
	d.EditingMeta = true
}

// SaveMeta updates name, url and hashtags. The editor stays open on failure.
func (d *ProjectDetail) SaveMeta(ctx context.Context, in domain.ProjectInput) bool {
	d.Meta = in
	d.EditingMeta = true

	updated, err := d.api.UpdateProject(ctx, d.ID, in)
	if err != nil {
		d.env.logFailure("projects.update", err)
		d.Alert(describe(err, d.env.L.T("project.update_failed")))
		return false
	}
	d.replaceProject(updated)
	d.EditingMeta = false
	return true
}

func (d *ProjectDetail) SaveSummary(ctx context.Context, summary string) bool {
	d.Summary = summary

	updated, err := d.api.UpdateProjectSummary(ctx, d.ID, summary)
	if err != nil {
		d.env.logFailure("projects.summary", err)
		d.Error = describe(err, d.env.L.T("summary.save_failed"))
		return false
	}
	d.replaceProject(updated)
	d.Summary = domain.Deref(updated.ResearchSummary)
	d.Toast = d.env.toast(d.env.L.T("summary.saved"))
	return true
}

// replaceProject takes the server's project metadata. Rows are reconciled
// separately, so the response's nested lists are not used.
func (d *ProjectDetail) replaceProject(updated *domain.Project) {
	updated.Posts = nil
	updated.NoteArticles = nil
	d.Project = updated
	d.Meta = domain.InputOf(updated)
}

// Select sets the generation panel. Ids that are not in the loaded lists
// and unknown languages fall back to none and Japanese.
func (d *ProjectDetail) Select(characterID, personaID *int64, language string) {
	d.Selection = Selection{Language: domain.LanguageJapanese}
	if characterID != nil && slices.ContainsFunc(d.Characters, func(c domain.Character) bool { return c.ID == *characterID }) {
		d.Selection.CharacterID = characterID
	}
	if personaID != nil && slices.ContainsFunc(d.Personas, func(p domain.TargetPersona) bool { return p.ID == *personaID }) {
		d.Selection.TargetPersonaID = personaID
	}
	if slices.Contains(domain.Languages, language) {
		d.Selection.Language = language
	}
}

func (d *ProjectDetail) GeneratePosts(ctx context.Context) bool {
	posts, err := d.api.GeneratePosts(ctx, d.ID, d.Selection.request())
	if err != nil {
		d.env.logFailure("projects.generate_posts", err)
		d.Error = describe(err, d.env.L.T("generate.failed"))
		return false
	}
	for i := range posts {
		d.Posts = Appended(d.Posts, newPostRow(d.env, d.api, &d.Feedback, &posts[i]))
	}
	return true
}

func (d *ProjectDetail) GenerateNoteArticle(ctx context.Context) bool {
	article, err := d.api.GenerateNoteArticle(ctx, d.ID, d.Selection.request())
	if err != nil {
		d.env.logFailure("projects.generate_note_article", err)
		d.Error = describe(err, d.env.L.T("generate.failed"))
		return false
	}
	d.Articles = Appended(d.Articles, newNoteRow(d.env, d.api, &d.Feedback, article))
	return true
}

func (d *ProjectDetail) Post(id int64) (*PostRow, bool) {
	return Find(d.Posts, id)
}

func (d *ProjectDetail) Article(id int64) (*NoteRow, bool) {
	return Find(d.Articles, id)
}

func (d *ProjectDetail) DeletePost(ctx context.Context, id int64, confirm Confirm) bool {
	row, ok := d.Post(id)
	if !ok || !row.Delete(ctx, confirm) {
		return false
	}
	d.Posts = Removed(d.Posts, id)
	return true
}

func (d *ProjectDetail) DeleteArticle(ctx context.Context, id int64, confirm Confirm) bool {
	row, ok := d.Article(id)
	if !ok {
		return false
	}
	title := strings.TrimSpace(row.Title)
	if !confirm(d.env.L.T("article.delete_confirm", title)) {
		return false
	}
	if err := d.api.DeleteNoteArticle(ctx, id); err != nil {
		d.env.logFailure("note_articles.delete", err)
		d.Alert(describe(err, d.env.L.T("article.delete_failed")))
		return false
	}
	d.Articles = Removed(d.Articles, id)
	return true
}
