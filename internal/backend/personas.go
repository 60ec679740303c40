package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"content_studio/internal/domain"
)

const (
	charactersPath     = "characters"
	targetPersonasPath = "target-personas"
)

func (c *Client) ListCharacters(ctx context.Context) ([]domain.Character, error) {
	var characters []domain.Character
	if err := c.getJSON(ctx, "/"+charactersPath+"/", &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

func (c *Client) GetCharacter(ctx context.Context, id int64) (*domain.Character, error) {
	var character domain.Character
	if err := c.getJSON(ctx, itemPath(charactersPath, id), &character); err != nil {
		return nil, err
	}
	return &character, nil
}

func (c *Client) CreateCharacter(ctx context.Context, fields domain.CharacterFields) (*domain.Character, error) {
	var character domain.Character
	if err := c.sendJSON(ctx, http.MethodPost, "/"+charactersPath+"/", fields, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

func (c *Client) UpdateCharacter(ctx context.Context, id int64, fields domain.CharacterFields) (*domain.Character, error) {
	var character domain.Character
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(charactersPath, id), fields, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

func (c *Client) DeleteCharacter(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath(charactersPath, id), nil, nil)
}

func (c *Client) GenerateCharacterDetails(ctx context.Context, seed string) (domain.GeneratedFields, error) {
	return c.generateDetails(ctx, charactersPath, seed)
}

func (c *Client) ListTargetPersonas(ctx context.Context) ([]domain.TargetPersona, error) {
	var personas []domain.TargetPersona
	if err := c.getJSON(ctx, "/"+targetPersonasPath+"/", &personas); err != nil {
		return nil, err
	}
	return personas, nil
}

func (c *Client) GetTargetPersona(ctx context.Context, id int64) (*domain.TargetPersona, error) {
	var persona domain.TargetPersona
	if err := c.getJSON(ctx, itemPath(targetPersonasPath, id), &persona); err != nil {
		return nil, err
	}
	return &persona, nil
}

func (c *Client) CreateTargetPersona(ctx context.Context, fields domain.TargetPersonaFields) (*domain.TargetPersona, error) {
	var persona domain.TargetPersona
	if err := c.sendJSON(ctx, http.MethodPost, "/"+targetPersonasPath+"/", fields, &persona); err != nil {
		return nil, err
	}
	return &persona, nil
}

func (c *Client) UpdateTargetPersona(ctx context.Context, id int64, fields domain.TargetPersonaFields) (*domain.TargetPersona, error) {
	var persona domain.TargetPersona
	if err := c.sendJSON(ctx, http.MethodPut, itemPath(targetPersonasPath, id), fields, &persona); err != nil {
		return nil, err
	}
	return &persona, nil
}

func (c *Client) DeleteTargetPersona(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, itemPath(targetPersonasPath, id), nil, nil)
}

func (c *Client) GenerateTargetPersonaDetails(ctx context.Context, seed string) (domain.GeneratedFields, error) {
	return c.generateDetails(ctx, targetPersonasPath, seed)
}

func (c *Client) generateDetails(ctx context.Context, collection, seed string) (domain.GeneratedFields, error) {
	body := struct {
		SeedText string `json:"seed_text"`
	}{seed}

	var raw map[string]json.RawMessage
	if err := c.sendJSON(ctx, http.MethodPost, "/"+collection+"/generate-details", body, &raw); err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, fmt.Errorf("decode response: empty generated details")
	}

	fields := make(domain.GeneratedFields, len(raw))
	for key, value := range raw {
		if string(value) == "null" {
			fields[key] = nil
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			// Numbers and lists are kept in their JSON spelling.
			s = string(value)
		}
		fields[key] = &s
	}
	return fields, nil
}
