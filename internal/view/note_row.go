package view

import (
	"context"

	"content_studio/internal/domain"
)

type NoteRow struct {
	env      *Env
	api      NoteArticleAPI
	feedback *Feedback

	Article *domain.NoteArticle
	Editing bool
	Title   string
	Content string
}

func newNoteRow(env *Env, api NoteArticleAPI, fb *Feedback, article *domain.NoteArticle) *NoteRow {
	return &NoteRow{
		env:      env,
		api:      api,
		feedback: fb,
		Article:  article,
		Title:    domain.Deref(article.Title),
		Content:  domain.Deref(article.Content),
	}
}

func (r NoteRow) EntityID() int64 { return r.Article.ID }

func (r *NoteRow) BeginEdit() {
	r.Title = domain.Deref(r.Article.Title)
	r.Content = domain.Deref(r.Article.Content)
	r.Editing = true
}

// Save leaves edit mode only when the update succeeds.
func (r *NoteRow) Save(ctx context.Context, title, content string) bool {
	r.Editing = true
	r.Title = title
	r.Content = content

	updated, err := r.api.UpdateNoteArticle(ctx, r.Article.ID, domain.NoteArticleInput{Title: title, Content: content})
	if err != nil {
		r.env.logFailure("note_articles.update", err)
		r.feedback.Alert(describe(err, r.env.L.T("article.update_failed")))
		return false
	}
	r.Article = updated
	r.Editing = false
	return true
}
