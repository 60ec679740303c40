package view

import (
	"context"
	"fmt"
	"time"

	"content_studio/internal/domain"
)

type PostMode int

const (
	ModeDisplay PostMode = iota
	ModeEditing
	ModeScheduling
	ModeMediaPrompts
	ModeUploading
)

func (m PostMode) String() string {
	switch m {
	case ModeEditing:
		return "edit"
	case ModeScheduling:
		return "schedule"
	case ModeMediaPrompts:
		return "media"
	case ModeUploading:
		return "upload"
	default:
		return "display"
	}
}

// ParsePostMode maps the ?mode= query of a post row.
func ParsePostMode(s string) PostMode {
	switch s {
	case "edit":
		return ModeEditing
	case "schedule":
		return ModeScheduling
	case "media":
		return ModeMediaPrompts
	case "upload":
		return ModeUploading
	default:
		return ModeDisplay
	}
}

// PostControls lists the actions a row offers for its post's status.
type PostControls struct {
	Edit         bool
	Schedule     bool
	PostNow      bool
	Upload       bool
	MediaPrompts bool
	Delete       bool
}

type PostRow struct {
	env      *Env
	api      PostAPI
	feedback *Feedback

	Post    *domain.Post
	Mode    PostMode
	Draft   string
	Prompts *domain.MediaPrompts
}

func newPostRow(env *Env, api PostAPI, fb *Feedback, post *domain.Post) *PostRow {
	return &PostRow{env: env, api: api, feedback: fb, Post: post, Draft: post.Content}
}

func (r PostRow) EntityID() int64 { return r.Post.ID }

func (r *PostRow) Controls() PostControls {
	draft := r.Post.Status == domain.PostStatusDraft
	return PostControls{
		Edit:         draft,
		Schedule:     draft,
		PostNow:      draft,
		Upload:       draft,
		MediaPrompts: true,
		Delete:       true,
	}
}

// Open switches the row to mode if the post's status allows it. Media
// prompts are only shown once generated, so that mode opens through
// GenerateMediaPrompts.
func (r *PostRow) Open(mode PostMode) bool {
	c := r.Controls()
	allowed := mode == ModeDisplay ||
		(mode == ModeEditing && c.Edit) ||
		(mode == ModeScheduling && c.Schedule) ||
		(mode == ModeUploading && c.Upload)
	if !allowed {
		return false
	}
	r.Mode = mode
	return true
}

func (r *PostRow) SaveContent(ctx context.Context, content string) bool {
	r.Draft = content
	if !r.Controls().Edit {
		return false
	}
	updated, err := r.api.UpdatePost(ctx, r.Post.ID, content)
	if err != nil {
		r.env.logFailure("posts.update", err)
		r.Mode = ModeEditing
		r.feedback.Alert(describe(err, r.env.L.T("post.save_failed")))
		return false
	}
	r.Post = updated
	r.Draft = updated.Content
	r.Mode = ModeDisplay
	return true
}

// Schedule books the post for at. A nil at is a validation failure and
// sends nothing.
func (r *PostRow) Schedule(ctx context.Context, at *time.Time) bool {
	if !r.Controls().Schedule {
		return false
	}
	if at == nil {
		r.Mode = ModeScheduling
		r.feedback.Alert(r.env.L.T("post.schedule_required"))
		return false
	}
	scheduled, err := r.api.SchedulePost(ctx, r.Post.ID, *at)
	if err != nil {
		r.env.logFailure("posts.schedule", err)
		r.Mode = ModeScheduling
		r.feedback.Alert(r.env.L.T("post.schedule_failed", describe(err, r.env.L.T("post.schedule_fallback"))))
		return false
	}
	r.Post.Status = scheduled.Status
	r.Post.ScheduledAt = scheduled.ScheduledAt
	r.Mode = ModeDisplay
	r.feedback.Alert(r.env.L.T("post.scheduled"))
	return true
}

func (r *PostRow) PostNow(ctx context.Context, confirm Confirm) bool {
	if !r.Controls().PostNow {
		return false
	}
	if !confirm(r.env.L.T("post.post_now_confirm")) {
		return false
	}
	if err := r.api.PostNow(ctx, r.Post.ID); err != nil {
		r.env.logFailure("posts.post_now", err)
		r.feedback.Alert(r.env.L.T("post.post_now_failed", describe(err, r.env.L.T("post.post_now_fallback"))))
		return false
	}
	r.Post.Status = domain.PostStatusPosted
	r.Mode = ModeDisplay
	r.feedback.Alert(r.env.L.T("post.posted"))
	return true
}

func (r *PostRow) GenerateMediaPrompts(ctx context.Context) bool {
	prompts, err := r.api.GenerateMediaPrompts(ctx, r.Post.ID)
	if err != nil {
		r.env.logFailure("posts.media_prompts", err)
		r.feedback.Alert(describe(err, r.env.L.T("post.media_failed")))
		return false
	}
	r.Prompts = prompts
	r.Mode = ModeMediaPrompts
	return true
}

func (r *PostRow) UploadImage(ctx context.Context, upload domain.ImageUpload) bool {
	if !r.Controls().Upload {
		r.feedback.Alert(r.env.L.T("post.upload_draft_only"))
		return false
	}
	updated, err := r.api.UploadPostImage(ctx, r.Post.ID, upload)
	if err != nil {
		r.env.logFailure("posts.upload_image", err)
		r.Mode = ModeUploading
		r.feedback.Alert(describe(err, r.env.L.T("post.upload_failed")))
		return false
	}
	r.Post.ImageURL = updated.ImageURL
	r.Mode = ModeDisplay
	r.feedback.Alert(r.env.L.T("post.uploaded"))
	return true
}

// Delete reports whether the parent should drop the row.
func (r *PostRow) Delete(ctx context.Context, confirm Confirm) bool {
	if !confirm(r.env.L.T("post.delete_confirm")) {
		return false
	}
	if err := r.api.DeletePost(ctx, r.Post.ID); err != nil {
		r.env.logFailure("posts.delete", err)
		r.feedback.Alert(describe(err, r.env.L.T("post.delete_failed")))
		return false
	}
	return true
}

func (r *PostRow) StatusText() string {
	switch r.Post.Status {
	case domain.PostStatusPosted:
		return r.env.L.T("post.status_posted")
	case domain.PostStatusScheduled:
		when := ""
		if r.Post.ScheduledAt != nil {
			when = FormatDateTime(r.Post.ScheduledAt.Time, r.env.Location)
		}
		return r.env.L.T("post.status_scheduled", when)
	default:
		return ""
	}
}

// MetricsText summarizes engagement of a posted post, empty when unknown.
func (r *PostRow) MetricsText() string {
	p := r.Post
	if p.Status != domain.PostStatusPosted || !p.HasMetrics() {
		return ""
	}
	count := func(n *int) int {
		if n == nil {
			return 0
		}
		return *n
	}
	return r.env.L.T("post.metrics",
		count(p.ImpressionCount), count(p.LikeCount), count(p.RetweetCount), count(p.ReplyCount))
}

// ScheduleValue prefills the datetime-local input.
func (r *PostRow) ScheduleValue() string {
	if r.Post.ScheduledAt == nil {
		return ""
	}
	return r.Post.ScheduledAt.In(r.env.Location).Format(datetimeLocalLayout)
}

const datetimeLocalLayout = "2006-01-02T15:04"

func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006/01/02 15:04")
}

// ParseScheduleInput reads the picked schedule time. utc is the browser's
// own conversion of the picker value and wins when present; without it local
// is read in loc. Blank input yields nil.
func ParseScheduleInput(local, utc string, loc *time.Location) (*time.Time, error) {
	if local == "" {
		return nil, nil
	}
	if utc != "" {
		t, err := time.Parse(time.RFC3339, utc)
		if err != nil {
			return nil, fmt.Errorf("parse schedule instant: %w", err)
		}
		return &t, nil
	}
	t, err := time.ParseInLocation(datetimeLocalLayout, local, loc)
	if err != nil {
		return nil, fmt.Errorf("parse schedule time: %w", err)
	}
	return &t, nil
}
