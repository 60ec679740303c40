package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"content_studio/internal/domain"
	"content_studio/internal/view/mocks"
)

type SettingsPageTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context

	api  *mocks.MockSettingsAPI
	page *SettingsPage
}

func (s *SettingsPageTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.api = mocks.NewMockSettingsAPI(s.ctrl)
	s.page = NewSettingsPage(newTestEnv(), s.api)
}

func (s *SettingsPageTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSettingsPageTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsPageTestSuite))
}

func (s *SettingsPageTestSuite) TestLoad_FindsPromptsByKey() {
	s.api.EXPECT().ListSettings(s.ctx).Return([]domain.Setting{
		{ID: 1, Key: "other", Value: domain.Ptr("x")},
		{ID: 2, Key: domain.SettingDefaultNotePrompt, Value: domain.Ptr("note prompt")},
		{ID: 3, Key: domain.SettingDefaultPostPrompt, Value: domain.Ptr("post prompt")},
	}, nil)

	s.Require().NoError(s.page.Load(s.ctx))
	s.Equal("post prompt", s.page.PostPrompt)
	s.Equal("note prompt", s.page.NotePrompt)
}

func (s *SettingsPageTestSuite) TestLoad_MissingKeysStayBlank() {
	s.api.EXPECT().ListSettings(s.ctx).Return(nil, nil)

	s.Require().NoError(s.page.Load(s.ctx))
	s.Empty(s.page.PostPrompt)
	s.Empty(s.page.NotePrompt)
}

func (s *SettingsPageTestSuite) TestSave_IssuesTwoPuts() {
	s.api.EXPECT().UpdateSetting(s.ctx, domain.SettingDefaultPostPrompt, "p").Return(&domain.Setting{}, nil).Times(1)
	s.api.EXPECT().UpdateSetting(s.ctx, domain.SettingDefaultNotePrompt, "n").Return(&domain.Setting{}, nil).Times(1)

	s.True(s.page.Save(s.ctx, "p", "n"))
	s.Require().NotNil(s.page.Toast)
	s.Equal("設定を保存しました！", s.page.Toast.Message)
	s.Empty(s.page.Error)
}

func (s *SettingsPageTestSuite) TestSave_OneFailureSuppressesToast() {
	s.api.EXPECT().UpdateSetting(s.ctx, domain.SettingDefaultPostPrompt, "p").Return(&domain.Setting{}, nil).Times(1)
	s.api.EXPECT().UpdateSetting(s.ctx, domain.SettingDefaultNotePrompt, "n").Return(nil, errors.New("down")).Times(1)

	s.False(s.page.Save(s.ctx, "p", "n"))
	s.Nil(s.page.Toast)
	s.Equal("note用プロンプトの保存に失敗しました。", s.page.Error)
	s.Equal("p", s.page.PostPrompt)
}

func (s *SettingsPageTestSuite) TestSave_ReportsPostPromptFirst() {
	s.api.EXPECT().UpdateSetting(s.ctx, domain.SettingDefaultPostPrompt, "p").Return(nil, errors.New("down"))
	s.api.EXPECT().UpdateSetting(s.ctx, domain.SettingDefaultNotePrompt, "n").Return(nil, errors.New("down"))

	s.False(s.page.Save(s.ctx, "p", "n"))
	s.Equal("X用プロンプトの保存に失敗しました。", s.page.Error)
}

func (s *SettingsPageTestSuite) TestSave_PutsRunConcurrently() {
	wait := barrier(2)
	s.api.EXPECT().UpdateSetting(s.ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (*domain.Setting, error) {
			if err := wait(); err != nil {
				return nil, err
			}
			return &domain.Setting{}, nil
		}).Times(2)

	s.True(s.page.Save(s.ctx, "p", "n"))
	s.Empty(s.page.Error)
}

func (s *SettingsPageTestSuite) TestSave_OverlappingSavesBothReachAPI() {
	wait := barrier(4)
	s.api.EXPECT().UpdateSetting(s.ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (*domain.Setting, error) {
			if err := wait(); err != nil {
				return nil, err
			}
			return &domain.Setting{}, nil
		}).Times(4)

	env := newTestEnv()
	first := NewSettingsPage(env, s.api)
	second := NewSettingsPage(env, s.api)

	var g errgroup.Group
	for _, page := range []*SettingsPage{first, second} {
		g.Go(func() error {
			if !page.Save(s.ctx, "p", "n") {
				return errors.New(page.Error)
			}
			return nil
		})
	}
	s.NoError(g.Wait())
	s.Empty(first.Alerts)
	s.Empty(second.Alerts)
}
