package domain

// CharacterFields are the editable attributes of an author persona.
type CharacterFields struct {
	Name           string  `json:"name"`
	Title          *string `json:"title"`
	Expertise      *string `json:"expertise"`
	Background     *string `json:"background"`
	ValuesBeliefs  *string `json:"values_beliefs"`
	Goal           *string `json:"goal"`
	BaseTone       *string `json:"base_tone"`
	StyleFeatures  *string `json:"style_features"`
	Catchphrases   *string `json:"catchphrases"`
	FavoriteEmojis *string `json:"favorite_emojis"`
	Impression     *string `json:"impression"`
}

type Character struct {
	ID int64 `json:"id"`
	CharacterFields
	CreatedAt *Timestamp `json:"created_at"`
	UpdatedAt *Timestamp `json:"updated_at"`
}

func (c Character) EntityID() int64 { return c.ID }

// TargetPersonaFields are the editable attributes of an audience persona.
type TargetPersonaFields struct {
	Name             string  `json:"name"`
	Challenges       *string `json:"challenges"`
	Goals            *string `json:"goals"`
	KnowledgeLevel   *string `json:"knowledge_level"`
	InfoSources      *string `json:"info_sources"`
	Keywords         *string `json:"keywords"`
	DecisionTriggers *string `json:"decision_triggers"`
}

type TargetPersona struct {
	ID int64 `json:"id"`
	TargetPersonaFields
	CreatedAt *Timestamp `json:"created_at"`
	UpdatedAt *Timestamp `json:"updated_at"`
}

func (p TargetPersona) EntityID() int64 { return p.ID }

// GeneratedFields holds AI-suggested field values keyed by JSON field name.
// A nil value means the model returned null for that field.
type GeneratedFields map[string]*string
