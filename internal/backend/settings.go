package backend

import (
	"context"
	"net/http"
	"net/url"

	"content_studio/internal/domain"
)

func (c *Client) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	var settings []domain.Setting
	if err := c.getJSON(ctx, "/settings/", &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *Client) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	if err := c.getJSON(ctx, "/settings/"+url.PathEscape(key), &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

func (c *Client) UpdateSetting(ctx context.Context, key, value string) (*domain.Setting, error) {
	body := struct {
		Value string `json:"value"`
	}{value}

	var setting domain.Setting
	if err := c.sendJSON(ctx, http.MethodPut, "/settings/"+url.PathEscape(key), body, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}
