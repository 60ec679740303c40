package view

import (
	"context"
	"strings"

	"content_studio/internal/domain"
	"content_studio/internal/i18n"
)

// FormValues are the raw field values of a profile form keyed by JSON name.
type FormValues map[string]string

type FieldSpec struct {
	Key       string
	Multiline bool
}

// Field is a FieldSpec with its localized label.
type Field struct {
	FieldSpec
	Label string
}

// Detail is one labelled line of a profile card.
type Detail struct {
	Label string
	Value string
}

// ProfileKind binds the generic list and form page to one profile collection.
type ProfileKind[T identified] struct {
	// Collection is the route segment and message prefix, e.g. "characters".
	Collection string
	// FieldPrefix prefixes field label keys, e.g. "character".
	FieldPrefix string
	Fields      []FieldSpec

	List     func(ctx context.Context) ([]T, error)
	Create   func(ctx context.Context, values FormValues) (*T, error)
	Update   func(ctx context.Context, id int64, values FormValues) (*T, error)
	Delete   func(ctx context.Context, id int64) error
	Generate func(ctx context.Context, seed string) (domain.GeneratedFields, error)

	Values   func(item *T) FormValues
	Name     func(item *T) string
	Subtitle func(item *T, l *i18n.Localizer) string
	Details  func(item *T, l *i18n.Localizer) []Detail
}

// ProfileForm is either the create form (ID nil) or a row's edit form.
type ProfileForm struct {
	ID     *int64
	Values FormValues
	Seed   string
	// Error is the save failure; GenerateError the AI fill failure.
	Error         string
	GenerateError string
}

func emptyForm(kind []FieldSpec) *ProfileForm {
	values := make(FormValues, len(kind))
	for _, f := range kind {
		values[f.Key] = ""
	}
	return &ProfileForm{Values: values}
}

// ProfileRow is one card of the list, in display or edit mode.
type ProfileRow struct {
	ID       int64
	Name     string
	Subtitle string
	Details  []Detail
	Edit     *ProfileForm
}

type ProfilePage[T identified] struct {
	Feedback
	env  *Env
	kind ProfileKind[T]

	Items    []*T
	Form     *ProfileForm
	EditForm *ProfileForm
}

func NewProfilePage[T identified](env *Env, kind ProfileKind[T]) *ProfilePage[T] {
	return &ProfilePage[T]{
		env:  env,
		kind: kind,
		Form: emptyForm(kind.Fields),
	}
}

func (p *ProfilePage[T]) Collection() string { return p.kind.Collection }

func (p *ProfilePage[T]) CreateForm() *ProfileForm { return p.Form }

func (p *ProfilePage[T]) EditingForm() *ProfileForm { return p.EditForm }

func (p *ProfilePage[T]) Text(suffix string) string {
	return p.env.L.T(p.kind.Collection + "." + suffix)
}

func (p *ProfilePage[T]) Fields() []Field {
	fields := make([]Field, len(p.kind.Fields))
	for i, f := range p.kind.Fields {
		fields[i] = Field{FieldSpec: f, Label: p.env.L.T(p.kind.FieldPrefix + ".field." + f.Key)}
	}
	return fields
}

// Load fetches the collection. On failure the list stays empty.
func (p *ProfilePage[T]) Load(ctx context.Context) error {
	items, err := p.kind.List(ctx)
	if err != nil {
		p.env.logFailure(p.kind.Collection+".list", err)
		p.Error = describe(err, p.Text("load_failed"))
		return err
	}
	p.Items = Pointers(items)
	return nil
}

func (p *ProfilePage[T]) Rows() []ProfileRow {
	rows := make([]ProfileRow, len(p.Items))
	for i, item := range p.Items {
		id := (*item).EntityID()
		row := ProfileRow{
			ID:      id,
			Name:    p.kind.Name(item),
			Details: p.kind.Details(item, p.env.L),
		}
		if p.kind.Subtitle != nil {
			row.Subtitle = p.kind.Subtitle(item, p.env.L)
		}
		if p.EditForm != nil && *p.EditForm.ID == id {
			row.Edit = p.EditForm
		}
		rows[i] = row
	}
	return rows
}

// BeginEdit switches the row with the given id to its edit form.
func (p *ProfilePage[T]) BeginEdit(id int64) bool {
	item, ok := Find(p.Items, id)
	if !ok {
		return false
	}
	p.EditForm = &ProfileForm{ID: &id, Values: p.kind.Values(item)}
	return true
}

// Bind overwrites the form's known fields with submitted values.
func (p *ProfilePage[T]) Bind(form *ProfileForm, submitted func(key string) string, seed string) {
	for _, f := range p.kind.Fields {
		form.Values[f.Key] = submitted(f.Key)
	}
	form.Seed = seed
}

// Generate asks the AI to fill the form from its seed. Returned keys
// overwrite the form's values; fields the response omits keep theirs.
func (p *ProfilePage[T]) Generate(ctx context.Context, form *ProfileForm) {
	seed := strings.TrimSpace(form.Seed)
	if seed == "" {
		p.Alert(p.env.L.T("profile.seed_required"))
		return
	}

	form.GenerateError = ""
	generated, err := p.kind.Generate(ctx, seed)
	if err != nil {
		p.env.logFailure(p.kind.Collection+".generate", err)
		form.GenerateError = describe(err, p.env.L.T("profile.generate_failed"))
		return
	}

	for _, f := range p.kind.Fields {
		if v, ok := generated[f.Key]; ok {
			form.Values[f.Key] = domain.Deref(v)
		}
	}
}

// Save creates the item when form has no id and updates it otherwise.
func (p *ProfilePage[T]) Save(ctx context.Context, form *ProfileForm) bool {
	form.Error = ""
	if strings.TrimSpace(form.Values["name"]) == "" {
		form.Error = p.env.L.T("profile.name_required")
		return false
	}

	if form.ID == nil {
		created, err := p.kind.Create(ctx, form.Values)
		if err != nil {
			p.env.logFailure(p.kind.Collection+".create", err)
			form.Error = describe(err, p.Text("save_failed"))
			return false
		}
		p.Items = Appended(p.Items, created)
		p.Form = emptyForm(p.kind.Fields)
		return true
	}

	updated, err := p.kind.Update(ctx, *form.ID, form.Values)
	if err != nil {
		p.env.logFailure(p.kind.Collection+".update", err)
		form.Error = describe(err, p.Text("save_failed"))
		return false
	}
	p.Items = Replaced(p.Items, updated)
	if form == p.EditForm {
		p.EditForm = nil
	}
	return true
}

// Delete removes the item after confirmation. Failures leave the list as is.
func (p *ProfilePage[T]) Delete(ctx context.Context, id int64, confirm Confirm) bool {
	item, ok := Find(p.Items, id)
	if !ok {
		return false
	}
	if !confirm(p.env.L.T("profile.delete_confirm", p.kind.Name(item))) {
		return false
	}

	if err := p.kind.Delete(ctx, id); err != nil {
		p.env.logFailure(p.kind.Collection+".delete", err)
		p.Alert(describe(err, p.env.L.T("profile.delete_failed")))
		return false
	}
	p.Items = Removed(p.Items, id)
	return true
}

func unsetOr(l *i18n.Localizer, s *string) string {
	if v := domain.Deref(s); v != "" {
		return v
	}
	return l.T("common.unset")
}

func CharacterProfiles(api CharacterAPI) ProfileKind[domain.Character] {
	return ProfileKind[domain.Character]{
		Collection:  "characters",
		FieldPrefix: "character",
		Fields: []FieldSpec{
			{Key: "name"},
			{Key: "title"},
			{Key: "expertise", Multiline: true},
			{Key: "background", Multiline: true},
			{Key: "values_beliefs", Multiline: true},
			{Key: "goal", Multiline: true},
			{Key: "base_tone", Multiline: true},
			{Key: "catchphrases", Multiline: true},
			{Key: "style_features", Multiline: true},
			{Key: "favorite_emojis"},
			{Key: "impression", Multiline: true},
		},
		List: api.ListCharacters,
		Create: func(ctx context.Context, v FormValues) (*domain.Character, error) {
			return api.CreateCharacter(ctx, characterFields(v))
		},
		Update: func(ctx context.Context, id int64, v FormValues) (*domain.Character, error) {
			return api.UpdateCharacter(ctx, id, characterFields(v))
		},
		Delete:   api.DeleteCharacter,
		Generate: api.GenerateCharacterDetails,
		Values:   characterValues,
		Name:     func(c *domain.Character) string { return c.Name },
		Subtitle: func(c *domain.Character, l *i18n.Localizer) string {
			if v := domain.Deref(c.Title); v != "" {
				return v
			}
			return l.T("character.no_title")
		},
		Details: func(c *domain.Character, l *i18n.Localizer) []Detail {
			return []Detail{
				{Label: l.T("character.short.expertise"), Value: unsetOr(l, c.Expertise)},
				{Label: l.T("character.short.base_tone"), Value: unsetOr(l, c.BaseTone)},
			}
		},
	}
}

func characterFields(v FormValues) domain.CharacterFields {
	return domain.CharacterFields{
		Name:           v["name"],
		Title:          domain.Optional(v["title"]),
		Expertise:      domain.Optional(v["expertise"]),
		Background:     domain.Optional(v["background"]),
		ValuesBeliefs:  domain.Optional(v["values_beliefs"]),
		Goal:           domain.Optional(v["goal"]),
		BaseTone:       domain.Optional(v["base_tone"]),
		StyleFeatures:  domain.Optional(v["style_features"]),
		Catchphrases:   domain.Optional(v["catchphrases"]),
		FavoriteEmojis: domain.Optional(v["favorite_emojis"]),
		Impression:     domain.Optional(v["impression"]),
	}
}

func characterValues(c *domain.Character) FormValues {
	return FormValues{
		"name":            c.Name,
		"title":           domain.Deref(c.Title),
		"expertise":       domain.Deref(c.Expertise),
		"background":      domain.Deref(c.Background),
		"values_beliefs":  domain.Deref(c.ValuesBeliefs),
		"goal":            domain.Deref(c.Goal),
		"base_tone":       domain.Deref(c.BaseTone),
		"style_features":  domain.Deref(c.StyleFeatures),
		"catchphrases":    domain.Deref(c.Catchphrases),
		"favorite_emojis": domain.Deref(c.FavoriteEmojis),
		"impression":      domain.Deref(c.Impression),
	}
}

func TargetPersonaProfiles(api TargetPersonaAPI) ProfileKind[domain.TargetPersona] {
	return ProfileKind[domain.TargetPersona]{
		Collection:  "targets",
		FieldPrefix: "target",
		Fields: []FieldSpec{
			{Key: "name"},
			{Key: "challenges", Multiline: true},
			{Key: "goals", Multiline: true},
			{Key: "knowledge_level", Multiline: true},
			{Key: "info_sources", Multiline: true},
			{Key: "keywords", Multiline: true},
			{Key: "decision_triggers", Multiline: true},
		},
		List: api.ListTargetPersonas,
		Create: func(ctx context.Context, v FormValues) (*domain.TargetPersona, error) {
			return api.CreateTargetPersona(ctx, personaFields(v))
		},
		Update: func(ctx context.Context, id int64, v FormValues) (*domain.TargetPersona, error) {
			return api.UpdateTargetPersona(ctx, id, personaFields(v))
		},
		Delete:   api.DeleteTargetPersona,
		Generate: api.GenerateTargetPersonaDetails,
		Values:   personaValues,
		Name:     func(p *domain.TargetPersona) string { return p.Name },
		Details: func(p *domain.TargetPersona, l *i18n.Localizer) []Detail {
			return []Detail{
				{Label: l.T("target.short.challenges"), Value: unsetOr(l, p.Challenges)},
				{Label: l.T("target.short.goals"), Value: unsetOr(l, p.Goals)},
				{Label: l.T("target.short.knowledge_level"), Value: unsetOr(l, p.KnowledgeLevel)},
				{Label: l.T("target.short.info_sources"), Value: unsetOr(l, p.InfoSources)},
				{Label: l.T("target.short.keywords"), Value: unsetOr(l, p.Keywords)},
				{Label: l.T("target.short.decision_triggers"), Value: unsetOr(l, p.DecisionTriggers)},
			}
		},
	}
}

func personaFields(v FormValues) domain.TargetPersonaFields {
	return domain.TargetPersonaFields{
		Name:             v["name"],
		Challenges:       domain.Optional(v["challenges"]),
		Goals:            domain.Optional(v["goals"]),
		KnowledgeLevel:   domain.Optional(v["knowledge_level"]),
		InfoSources:      domain.Optional(v["info_sources"]),
		Keywords:         domain.Optional(v["keywords"]),
		DecisionTriggers: domain.Optional(v["decision_triggers"]),
	}
}

func personaValues(p *domain.TargetPersona) FormValues {
	return FormValues{
		"name":              p.Name,
		"challenges":        domain.Deref(p.Challenges),
		"goals":             domain.Deref(p.Goals),
		"knowledge_level":   domain.Deref(p.KnowledgeLevel),
		"info_sources":      domain.Deref(p.InfoSources),
		"keywords":          domain.Deref(p.Keywords),
		"decision_triggers": domain.Deref(p.DecisionTriggers),
	}
}
