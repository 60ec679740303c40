package view

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"content_studio/internal/domain"
)

type ProjectAPI interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error)
	UpdateProjectSummary(ctx context.Context, id int64, summary string) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	GeneratePosts(ctx context.Context, id int64, req domain.GenerateRequest) ([]domain.Post, error)
	GenerateNoteArticle(ctx context.Context, id int64, req domain.GenerateRequest) (*domain.NoteArticle, error)
}

type CharacterAPI interface {
	ListCharacters(ctx context.Context) ([]domain.Character, error)
	CreateCharacter(ctx context.Context, fields domain.CharacterFields) (*domain.Character, error)
	UpdateCharacter(ctx context.Context, id int64, fields domain.CharacterFields) (*domain.Character, error)
	DeleteCharacter(ctx context.Context, id int64) error
	GenerateCharacterDetails(ctx context.Context, seed string) (domain.GeneratedFields, error)
}

type TargetPersonaAPI interface {
	ListTargetPersonas(ctx context.Context) ([]domain.TargetPersona, error)
	CreateTargetPersona(ctx context.Context, fields domain.TargetPersonaFields) (*domain.TargetPersona, error)
	UpdateTargetPersona(ctx context.Context, id int64, fields domain.TargetPersonaFields) (*domain.TargetPersona, error)
	DeleteTargetPersona(ctx context.Context, id int64) error
	GenerateTargetPersonaDetails(ctx context.Context, seed string) (domain.GeneratedFields, error)
}

type PostAPI interface {
	UpdatePost(ctx context.Context, id int64, content string) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
	SchedulePost(ctx context.Context, id int64, at time.Time) (*domain.Post, error)
	PostNow(ctx context.Context, id int64) error
	GenerateMediaPrompts(ctx context.Context, id int64) (*domain.MediaPrompts, error)
	UploadPostImage(ctx context.Context, id int64, upload domain.ImageUpload) (*domain.Post, error)
}

type NoteArticleAPI interface {
	UpdateNoteArticle(ctx context.Context, id int64, in domain.NoteArticleInput) (*domain.NoteArticle, error)
	DeleteNoteArticle(ctx context.Context, id int64) error
}

type SettingsAPI interface {
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	UpdateSetting(ctx context.Context, key, value string) (*domain.Setting, error)
}

// Backend is everything the console needs from the content API.
type Backend interface {
	ProjectAPI
	CharacterAPI
	TargetPersonaAPI
	PostAPI
	NoteArticleAPI
	SettingsAPI
}

type ActivityLog interface {
	Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
	Tallies(ctx context.Context) ([]domain.ActivityTally, error)
}
