package domain

// Keys of the prompt templates the console edits.
const (
	SettingDefaultPostPrompt = "default_post_prompt"
	SettingDefaultNotePrompt = "default_note_prompt"
)

type Setting struct {
	ID          int64      `json:"id"`
	Key         string     `json:"key"`
	Value       *string    `json:"value"`
	Description *string    `json:"description"`
	CreatedAt   *Timestamp `json:"created_at"`
	UpdatedAt   *Timestamp `json:"updated_at"`
}

func (s Setting) EntityID() int64 { return s.ID }

// FindSetting returns the first setting with the given key.
func FindSetting(settings []Setting, key string) (*Setting, bool) {
	for i := range settings {
		if settings[i].Key == key {
			return &settings[i], true
		}
	}
	return nil, false
}
