package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"content_studio/internal/domain"
)

func (c *Client) UpdatePost(ctx context.Context, id int64, content string) (*domain.Post, error) {
	body := struct {
		Content string `json:"content"`
	}{content}

	var post domain.Post
	if err := c.sendJSON(ctx, http.MethodPut, itemPath("posts", id), body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath("posts", id), nil, nil)
}

// SchedulePost asks the backend to publish the post at the given instant.
func (c *Client) SchedulePost(ctx context.Context, id int64, at time.Time) (*domain.Post, error) {
	body := struct {
		ScheduledAt string `json:"scheduled_at"`
	}{at.UTC().Format("2006-01-02T15:04:05.000Z07:00")}

	var post domain.Post
	if err := c.sendJSON(ctx, http.MethodPost, itemPath("posts", id, "schedule"), body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) PostNow(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodPost, itemPath("posts", id, "post-now"), nil, nil)
}

func (c *Client) GenerateMediaPrompts(ctx context.Context, id int64) (*domain.MediaPrompts, error) {
	var prompts domain.MediaPrompts
	if err := c.sendJSON(ctx, http.MethodPost, itemPath("posts", id, "generate-media-prompts"), nil, &prompts); err != nil {
		return nil, err
	}
	return &prompts, nil
}

// UploadPostImage sends the image as the "file" part of a multipart form and
// returns the post with its new image_url.
func (c *Client) UploadPostImage(ctx context.Context, id int64, upload domain.ImageUpload) (*domain.Post, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, upload.Filename))
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, upload.Body); err != nil {
		return nil, fmt.Errorf("copy upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	var post domain.Post
	if err := c.do(ctx, http.MethodPost, itemPath("posts", id, "upload-image"), &buf, mw.FormDataContentType(), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) UpdateNoteArticle(ctx context.Context, id int64, in domain.NoteArticleInput) (*domain.NoteArticle, error) {
	var article domain.NoteArticle
	if err := c.sendJSON(ctx, http.MethodPut, itemPath("note-articles", id), in, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *Client) DeleteNoteArticle(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath("note-articles", id), nil, nil)
}
