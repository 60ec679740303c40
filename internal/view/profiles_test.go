package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_studio/internal/backend"
	"content_studio/internal/domain"
	"content_studio/internal/view/mocks"
)

type ProfilePageTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	characters *mocks.MockCharacterAPI
	personas   *mocks.MockTargetPersonaAPI

	page *ProfilePage[domain.Character]
}

func (s *ProfilePageTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.characters = mocks.NewMockCharacterAPI(s.ctrl)
	s.personas = mocks.NewMockTargetPersonaAPI(s.ctrl)
	s.page = NewProfilePage(newTestEnv(), CharacterProfiles(s.characters))
}

func (s *ProfilePageTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProfilePageTestSuite(t *testing.T) {
	suite.Run(t, new(ProfilePageTestSuite))
}

func (s *ProfilePageTestSuite) loadCharacters(items ...domain.Character) {
	s.characters.EXPECT().ListCharacters(s.ctx).Return(items, nil)
	s.Require().NoError(s.page.Load(s.ctx))
}

func character(id int64, name string) domain.Character {
	return domain.Character{ID: id, CharacterFields: domain.CharacterFields{Name: name}}
}

func (s *ProfilePageTestSuite) TestCreate_AppendsAndResetsForm() {
	s.loadCharacters()

	s.page.Form.Values["name"] = "Aiko"
	s.page.Form.Seed = "明るい広報担当"

	s.characters.EXPECT().
		CreateCharacter(s.ctx, domain.CharacterFields{Name: "Aiko"}).
		Return(&domain.Character{ID: 7, CharacterFields: domain.CharacterFields{Name: "Aiko"}}, nil)

	s.True(s.page.Save(s.ctx, s.page.Form))

	s.Require().Len(s.page.Items, 1)
	s.Equal(int64(7), s.page.Items[0].ID)
	s.Equal("Aiko", s.page.Items[0].Name)
	s.Empty(s.page.Form.Values["name"])
	s.Empty(s.page.Form.Seed)
	s.Empty(s.page.Form.Error)
}

func (s *ProfilePageTestSuite) TestCreate_AppendsExactlyOnceAtEnd() {
	s.loadCharacters(character(1, "A"), character(2, "B"))
	before := s.page.Items

	s.page.Form.Values["name"] = "C"
	s.characters.EXPECT().CreateCharacter(s.ctx, gomock.Any()).Return(&domain.Character{ID: 3, CharacterFields: domain.CharacterFields{Name: "C"}}, nil)

	s.True(s.page.Save(s.ctx, s.page.Form))

	s.Require().Len(s.page.Items, 3)
	s.Same(before[0], s.page.Items[0])
	s.Same(before[1], s.page.Items[1])
	s.Equal(int64(3), s.page.Items[2].ID)
}

func (s *ProfilePageTestSuite) TestCreate_SendsBlankFieldsAsNull() {
	s.loadCharacters()

	s.page.Form.Values["name"] = "Aiko"
	s.page.Form.Values["title"] = "広報"

	s.characters.EXPECT().
		CreateCharacter(s.ctx, domain.CharacterFields{Name: "Aiko", Title: domain.Ptr("広報")}).
		Return(&domain.Character{ID: 1}, nil)

	s.True(s.page.Save(s.ctx, s.page.Form))
}

func (s *ProfilePageTestSuite) TestCreate_FailureKeepsValues() {
	s.loadCharacters()
	s.page.Form.Values["name"] = "Aiko"

	s.characters.EXPECT().CreateCharacter(s.ctx, gomock.Any()).
		Return(nil, &backend.APIError{StatusCode: 400, Detail: "Name already exists"})

	s.False(s.page.Save(s.ctx, s.page.Form))

	s.Empty(s.page.Items)
	s.Equal("Aiko", s.page.Form.Values["name"])
	s.Equal("Name already exists", s.page.Form.Error)
}

func (s *ProfilePageTestSuite) TestCreate_FailureWithoutDetailUsesGenericMessage() {
	s.loadCharacters()
	s.page.Form.Values["name"] = "Aiko"

	s.characters.EXPECT().CreateCharacter(s.ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

	s.False(s.page.Save(s.ctx, s.page.Form))
	s.Equal("キャラクターの保存に失敗しました。", s.page.Form.Error)
}

func (s *ProfilePageTestSuite) TestSave_RequiresName() {
	s.loadCharacters()
	s.page.Form.Values["name"] = "  "

	s.False(s.page.Save(s.ctx, s.page.Form))
	s.Equal("名前を入力してください。", s.page.Form.Error)
}

func (s *ProfilePageTestSuite) TestUpdate_ReplacesByIDAndLeavesEditMode() {
	s.loadCharacters(character(1, "A"), character(2, "B"), character(3, "C"))
	before := s.page.Items

	s.Require().True(s.page.BeginEdit(2))
	s.Equal("B", s.page.EditForm.Values["name"])

	s.page.EditForm.Values["name"] = "B2"
	updated := &domain.Character{ID: 2, CharacterFields: domain.CharacterFields{Name: "B2"}}
	s.characters.EXPECT().UpdateCharacter(s.ctx, int64(2), domain.CharacterFields{Name: "B2"}).Return(updated, nil)

	s.True(s.page.Save(s.ctx, s.page.EditForm))

	s.Require().Len(s.page.Items, 3)
	s.Same(before[0], s.page.Items[0])
	s.Same(updated, s.page.Items[1])
	s.Same(before[2], s.page.Items[2])
	s.Nil(s.page.EditForm)
}

func (s *ProfilePageTestSuite) TestUpdate_FailureStaysInEditMode() {
	s.loadCharacters(character(1, "A"))
	s.Require().True(s.page.BeginEdit(1))

	s.characters.EXPECT().UpdateCharacter(s.ctx, int64(1), gomock.Any()).Return(nil, &backend.APIError{StatusCode: 500})

	s.False(s.page.Save(s.ctx, s.page.EditForm))
	s.NotNil(s.page.EditForm)
	s.Equal("キャラクターの保存に失敗しました。", s.page.EditForm.Error)

	rows := s.page.Rows()
	s.Require().Len(rows, 1)
	s.Same(s.page.EditForm, rows[0].Edit)
}

func (s *ProfilePageTestSuite) TestGenerate_EmptySeedSendsNothing() {
	s.loadCharacters()
	s.page.Form.Seed = "   "

	s.page.Generate(s.ctx, s.page.Form)

	s.Equal([]string{"キーワードを入力してください。"}, s.page.Alerts)
}

func (s *ProfilePageTestSuite) TestGenerate_MergesKnownFields() {
	s.loadCharacters()
	s.page.Form.Values["title"] = "keep me"
	s.page.Form.Values["expertise"] = "overwrite me"
	s.page.Form.Seed = "新人広報"

	s.characters.EXPECT().GenerateCharacterDetails(s.ctx, "新人広報").Return(domain.GeneratedFields{
		"name":      domain.Ptr("Aiko"),
		"expertise": nil,
		"base_tone": domain.Ptr("明るい"),
		"hobby":     domain.Ptr("ignored"),
	}, nil)

	s.page.Generate(s.ctx, s.page.Form)

	s.Equal("Aiko", s.page.Form.Values["name"])
	s.Equal("", s.page.Form.Values["expertise"])
	s.Equal("明るい", s.page.Form.Values["base_tone"])
	s.Equal("keep me", s.page.Form.Values["title"])
	s.NotContains(s.page.Form.Values, "hobby")
	s.Empty(s.page.Form.GenerateError)
}

func (s *ProfilePageTestSuite) TestGenerate_FailureDoesNotBlockSave() {
	s.loadCharacters()
	s.page.Form.Values["name"] = "Aiko"
	s.page.Form.Seed = "seed"

	s.characters.EXPECT().GenerateCharacterDetails(s.ctx, "seed").Return(nil, errors.New("timeout"))
	s.page.Generate(s.ctx, s.page.Form)
	s.Equal("AIによるペルソナ生成に失敗しました。", s.page.Form.GenerateError)

	s.characters.EXPECT().CreateCharacter(s.ctx, gomock.Any()).Return(&domain.Character{ID: 1, CharacterFields: domain.CharacterFields{Name: "Aiko"}}, nil)
	s.True(s.page.Save(s.ctx, s.page.Form))
}

func (s *ProfilePageTestSuite) TestDelete_DeclinedSendsNothing() {
	s.loadCharacters(character(1, "Aiko"))

	s.False(s.page.Delete(s.ctx, 1, decline))
	s.Len(s.page.Items, 1)
}

func (s *ProfilePageTestSuite) TestDelete_RemovesExactlyOne() {
	s.loadCharacters(character(1, "Aiko"), character(2, "Ken"))

	var asked string
	s.characters.EXPECT().DeleteCharacter(s.ctx, int64(1)).Return(nil)

	s.True(s.page.Delete(s.ctx, 1, askedWith(&asked)))

	s.Equal("「Aiko」を本当に削除しますか？", asked)
	s.Require().Len(s.page.Items, 1)
	s.Equal(int64(2), s.page.Items[0].ID)
}

func (s *ProfilePageTestSuite) TestDelete_FailureAlertsAndKeepsList() {
	s.loadCharacters(character(1, "Aiko"))

	s.characters.EXPECT().DeleteCharacter(s.ctx, int64(1)).Return(&backend.APIError{StatusCode: 500})

	s.False(s.page.Delete(s.ctx, 1, accept))
	s.Len(s.page.Items, 1)
	s.Equal([]string{"削除中にエラーが発生しました。"}, s.page.Alerts)
}

func (s *ProfilePageTestSuite) TestLoad_FailureLeavesListEmpty() {
	page := NewProfilePage(newTestEnv(), TargetPersonaProfiles(s.personas))
	s.personas.EXPECT().ListTargetPersonas(s.ctx).Return(nil, errors.New("down"))

	s.Error(page.Load(s.ctx))
	s.Empty(page.Items)
	s.Equal("ターゲットペルソナ一覧の取得に失敗しました。", page.Error)
}

func (s *ProfilePageTestSuite) TestTargetPersona_RowsShowUnset() {
	page := NewProfilePage(newTestEnv(), TargetPersonaProfiles(s.personas))
	s.personas.EXPECT().ListTargetPersonas(s.ctx).Return([]domain.TargetPersona{{
		ID:                  4,
		TargetPersonaFields: domain.TargetPersonaFields{Name: "学生", Goals: domain.Ptr("就職"), Keywords: domain.Ptr("")},
	}}, nil)
	s.Require().NoError(page.Load(s.ctx))

	rows := page.Rows()
	s.Require().Len(rows, 1)
	s.Equal("学生", rows[0].Name)
	s.Require().Len(rows[0].Details, 6)
	s.Equal(Detail{Label: "課題", Value: "未設定"}, rows[0].Details[0])
	s.Equal(Detail{Label: "目標", Value: "就職"}, rows[0].Details[1])
	s.Equal(Detail{Label: "キーワード", Value: "未設定"}, rows[0].Details[4])
	s.Nil(rows[0].Edit)
}

func (s *ProfilePageTestSuite) TestTargetPersona_UpdateSendsFields() {
	page := NewProfilePage(newTestEnv(), TargetPersonaProfiles(s.personas))
	s.personas.EXPECT().ListTargetPersonas(s.ctx).Return([]domain.TargetPersona{{ID: 4, TargetPersonaFields: domain.TargetPersonaFields{Name: "学生"}}}, nil)
	s.Require().NoError(page.Load(s.ctx))
	s.Require().True(page.BeginEdit(4))

	page.Bind(page.EditForm, func(key string) string {
		if key == "name" {
			return "大学生"
		}
		if key == "challenges" {
			return "時間がない"
		}
		return ""
	}, "")

	s.personas.EXPECT().
		UpdateTargetPersona(s.ctx, int64(4), domain.TargetPersonaFields{Name: "大学生", Challenges: domain.Ptr("時間がない")}).
		Return(&domain.TargetPersona{ID: 4, TargetPersonaFields: domain.TargetPersonaFields{Name: "大学生"}}, nil)

	s.True(page.Save(s.ctx, page.EditForm))
	s.Equal("大学生", page.Items[0].Name)
}

func (s *ProfilePageTestSuite) TestFields_AreLocalized() {
	fields := s.page.Fields()
	s.Require().Len(fields, 11)
	s.Equal("name", fields[0].Key)
	s.Equal("1. 名前 (必須)", fields[0].Label)
	s.True(fields[2].Multiline)
}
