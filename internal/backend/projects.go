package backend

import (
	"context"
	"net/http"

	"content_studio/internal/domain"
)

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.getJSON(ctx, "/projects/", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject fetches a project with its posts and note articles.
func (c *Client) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	var project domain.Project
	if err := c.getJSON(ctx, itemPath("projects", id), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	var project domain.Project
	if err := c.sendJSON(ctx, http.MethodPost, "/projects/", in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error) {
	var project domain.Project
	if err := c.sendJSON(ctx, http.MethodPut, itemPath("projects", id), in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) UpdateProjectSummary(ctx context.Context, id int64, summary string) (*domain.Project, error) {
	body := struct {
		ResearchSummary string `json:"research_summary"`
	}{summary}

	var project domain.Project
	if err := c.sendJSON(ctx, http.MethodPut, itemPath("projects", id, "summary"), body, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath("projects", id), nil, nil)
}

func (c *Client) GeneratePosts(ctx context.Context, id int64, req domain.GenerateRequest) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.sendJSON(ctx, http.MethodPost, itemPath("projects", id, "generate-posts"), req, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GenerateNoteArticle(ctx context.Context, id int64, req domain.GenerateRequest) (*domain.NoteArticle, error) {
	var article domain.NoteArticle
	if err := c.sendJSON(ctx, http.MethodPost, itemPath("projects", id, "generate-note-article"), req, &article); err != nil {
		return nil, err
	}
	return &article, nil
}
