package domain

import "io"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPosted    PostStatus = "posted"
)

type Post struct {
	ID              int64      `json:"id"`
	ProjectID       int64      `json:"project_id"`
	Content         string     `json:"content"`
	Status          PostStatus `json:"status"`
	ScheduledAt     *Timestamp `json:"scheduled_at"`
	ImageURL        *string    `json:"image_url"`
	TweetID         *string    `json:"tweet_id"`
	RetweetCount    *int       `json:"retweet_count"`
	ReplyCount      *int       `json:"reply_count"`
	LikeCount       *int       `json:"like_count"`
	ImpressionCount *int       `json:"impression_count"`
	CreatedAt       *Timestamp `json:"created_at"`
}

func (p Post) EntityID() int64 { return p.ID }

// HasMetrics reports whether the backend has recorded any engagement for p.
func (p Post) HasMetrics() bool {
	return p.TweetID != nil || p.RetweetCount != nil || p.ReplyCount != nil ||
		p.LikeCount != nil || p.ImpressionCount != nil
}

// MediaPrompts are AI-written prompts for image and video generators.
type MediaPrompts struct {
	ImagePrompt string `json:"image_prompt"`
	VideoPrompt string `json:"video_prompt"`
}

type NoteArticle struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"project_id"`
	Title     *string    `json:"title"`
	Content   *string    `json:"content"`
	Status    string     `json:"status"`
	CreatedAt *Timestamp `json:"created_at"`
	UpdatedAt *Timestamp `json:"updated_at"`
}

func (a NoteArticle) EntityID() int64 { return a.ID }

type NoteArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ImageUpload is an image file chosen in the browser, forwarded as multipart.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// AcceptedImageTypes are the MIME types the upload picker offers.
var AcceptedImageTypes = []string{"image/png", "image/jpeg", "image/gif"}
