package domain

// Project is the root aggregate of a content campaign.
type Project struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	URL              string        `json:"url"`
	Hashtags         *string       `json:"hashtags"`
	ResearchSummary  *string       `json:"research_summary"`
	LatestAIResponse *string       `json:"latest_ai_response"`
	Posts            []Post        `json:"posts"`
	NoteArticles     []NoteArticle `json:"note_articles"`
	CreatedAt        *Timestamp    `json:"created_at"`
	UpdatedAt        *Timestamp    `json:"updated_at"`
}

func (p Project) EntityID() int64 { return p.ID }

// ProjectInput is the body of project create and metadata update.
type ProjectInput struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Hashtags string `json:"hashtags"`
}

// InputOf returns the editable metadata of p.
func InputOf(p *Project) ProjectInput {
	return ProjectInput{
		Name:     p.Name,
		URL:      p.URL,
		Hashtags: Deref(p.Hashtags),
	}
}

// Languages the generation endpoints accept, as the backend names them.
const (
	LanguageJapanese = "日本語"
	LanguageEnglish  = "英語"
)

var Languages = []string{LanguageJapanese, LanguageEnglish}

// GenerateRequest selects who writes, for whom, and in which language.
type GenerateRequest struct {
	CharacterID     *int64 `json:"character_id"`
	TargetPersonaID *int64 `json:"target_persona_id"`
	Language        string `json:"language"`
}
