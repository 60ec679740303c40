package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"content_studio/internal/domain"
)

// SettingsPage edits the two prompt templates.
type SettingsPage struct {
	Feedback
	env *Env
	api SettingsAPI

	PostPrompt string
	NotePrompt string
}

func NewSettingsPage(env *Env, api SettingsAPI) *SettingsPage {
	return &SettingsPage{env: env, api: api}
}

func (p *SettingsPage) Load(ctx context.Context) error {
	settings, err := p.api.ListSettings(ctx)
	if err != nil {
		p.env.logFailure("settings.list", err)
		p.Error = describe(err, p.env.L.T("settings.load_failed"))
		return err
	}
	if s, ok := domain.FindSetting(settings, domain.SettingDefaultPostPrompt); ok {
		p.PostPrompt = domain.Deref(s.Value)
	}
	if s, ok := domain.FindSetting(settings, domain.SettingDefaultNotePrompt); ok {
		p.NotePrompt = domain.Deref(s.Value)
	}
	return nil
}

// Save writes both prompts concurrently. One failing write does not cancel
// the other and nothing is rolled back; the first failure in key order is
// reported and the success toast is withheld.
func (p *SettingsPage) Save(ctx context.Context, postPrompt, notePrompt string) bool {
	p.PostPrompt = postPrompt
	p.NotePrompt = notePrompt

	writes := []struct {
		key, value, failedKey string
		err                   error
	}{
		{key: domain.SettingDefaultPostPrompt, value: postPrompt, failedKey: "settings.post_failed"},
		{key: domain.SettingDefaultNotePrompt, value: notePrompt, failedKey: "settings.note_failed"},
	}

	var g errgroup.Group
	for i := range writes {
		w := &writes[i]
		g.Go(func() error {
			_, w.err = p.api.UpdateSetting(ctx, w.key, w.value)
			return nil
		})
	}
	_ = g.Wait()

	for _, w := range writes {
		if w.err != nil {
			p.env.logFailure("settings.update", w.err)
			p.Error = describe(w.err, p.env.L.T(w.failedKey))
			return false
		}
	}
	p.Toast = p.env.toast(p.env.L.T("settings.saved"))
	return true
}
