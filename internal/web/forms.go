package web

import (
	"strconv"

	"content_studio/internal/domain"
)

type projectForm struct {
	Name     string `form:"name"`
	URL      string `form:"url"`
	Hashtags string `form:"hashtags"`
}

func (f projectForm) input() domain.ProjectInput {
	return domain.ProjectInput{Name: f.Name, URL: f.URL, Hashtags: f.Hashtags}
}

type summaryForm struct {
	ResearchSummary string `form:"research_summary"`
}

// generationForm leaves the ids blank for "none".
type generationForm struct {
	CharacterID     string `form:"character_id" binding:"omitempty,number"`
	TargetPersonaID string `form:"target_persona_id" binding:"omitempty,number"`
	Language        string `form:"language"`
}

type postContentForm struct {
	Content string `form:"content"`
}

// scheduleForm carries the picker value and, when the browser ran the
// submit script, the same instant converted to UTC.
type scheduleForm struct {
	ScheduledAt    string `form:"scheduled_at"`
	ScheduledAtUTC string `form:"scheduled_at_utc"`
}

type articleForm struct {
	Title   string `form:"title"`
	Content string `form:"content"`
}

type settingsForm struct {
	PostPrompt string `form:"post_prompt"`
	NotePrompt string `form:"note_prompt"`
}

type projectQuery struct {
	Edit    string `form:"edit"`
	Post    string `form:"post" binding:"omitempty,number"`
	Mode    string `form:"mode"`
	Article string `form:"article" binding:"omitempty,number"`
}

type profileQuery struct {
	Edit string `form:"edit" binding:"omitempty,number"`
}

// parseID reads an id that binding has already checked to be digits. Blank
// means none.
func parseID(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
