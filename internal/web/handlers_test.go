package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_studio/internal/domain"
	"content_studio/internal/i18n"
	"content_studio/internal/view"
	"content_studio/internal/view/mocks"
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api      *mocks.MockBackend
	activity *mocks.MockActivityLog
	router   *gin.Engine
}

func (s *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlersTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockBackend(s.ctrl)
	s.activity = mocks.NewMockActivityLog(s.ctrl)
	s.router = s.newRouter(s.activity)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) newRouter(activity view.ActivityLog) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := view.NewEnv(i18n.MustNew("ja"), time.UTC, 3*time.Second, logger)

	deps := Deps{
		Env:              env,
		Backend:          s.api,
		ActivityPageSize: 20,
		MaxUploadBytes:   1 << 20,
		Logger:           logger,
	}
	if activity != nil {
		deps.Activity = activity
	}

	r, err := NewRouter(deps)
	s.Require().NoError(err)
	return r
}

func (s *HandlersTestSuite) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlersTestSuite) expectProjectLoad() {
	s.api.EXPECT().GetProject(gomock.Any(), int64(1)).Return(&domain.Project{
		ID:   1,
		Name: "Launch",
		URL:  "https://example.com",
		Posts: []domain.Post{
			{ID: 3, ProjectID: 1, Content: "draft post", Status: domain.PostStatusDraft},
		},
		NoteArticles: []domain.NoteArticle{
			{ID: 8, ProjectID: 1, Title: domain.Ptr("Intro"), Content: domain.Ptr("body")},
		},
	}, nil)
	s.api.EXPECT().ListCharacters(gomock.Any()).Return([]domain.Character{{ID: 2, CharacterFields: domain.CharacterFields{Name: "Aiko"}}}, nil)
	s.api.EXPECT().ListTargetPersonas(gomock.Any()).Return(nil, nil)
}

func (s *HandlersTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(requestIDHeader))
}

func (s *HandlersTestSuite) TestMetrics() {
	rec := s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlersTestSuite) TestListProjects() {
	s.api.EXPECT().ListProjects(gomock.Any()).Return([]domain.Project{{ID: 1, Name: "Launch", URL: "https://example.com"}}, nil)

	rec := s.do(http.MethodGet, "/", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Launch")
	s.Contains(rec.Body.String(), `href="/projects/1"`)
	s.Contains(rec.Body.String(), `class="active"`)
}

func (s *HandlersTestSuite) TestCreateProject_RedirectsToDetail() {
	s.api.EXPECT().CreateProject(gomock.Any(), domain.ProjectInput{Name: "Launch", URL: "https://example.com", Hashtags: "#a"}).
		Return(&domain.Project{ID: 12, Name: "Launch"}, nil)

	rec := s.do(http.MethodPost, "/projects", url.Values{"name": {"Launch"}, "url": {"https://example.com"}, "hashtags": {"#a"}})

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/projects/12", rec.Header().Get("Location"))
}

func (s *HandlersTestSuite) TestCreateProject_MissingURLSendsNothing() {
	s.api.EXPECT().ListProjects(gomock.Any()).Return(nil, nil)

	rec := s.do(http.MethodPost, "/projects", url.Values{"name": {"Launch"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "プロジェクト名とURLの両方を入力してください。")
}

func (s *HandlersTestSuite) TestDeleteProject_RequiresConfirmation() {
	s.api.EXPECT().ListProjects(gomock.Any()).Return([]domain.Project{{ID: 1, Name: "Launch"}}, nil).Times(2)

	rec := s.do(http.MethodPost, "/projects/1/delete", url.Values{"confirmed": {""}})
	s.Equal(http.StatusOK, rec.Code)

	s.api.EXPECT().DeleteProject(gomock.Any(), int64(1)).Return(nil)
	rec = s.do(http.MethodPost, "/projects/1/delete", url.Values{"confirmed": {"yes"}})
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), `href="/projects/1"`)
}

func (s *HandlersTestSuite) TestShowProject() {
	s.expectProjectLoad()

	rec := s.do(http.MethodGet, "/projects/1?post=3&mode=schedule", nil)

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, "Launch")
	s.Contains(body, "Aiko")
	s.Contains(body, `name="scheduled_at"`)
	s.Contains(body, "Intro")
}

func (s *HandlersTestSuite) TestShowProject_BadID() {
	rec := s.do(http.MethodGet, "/projects/abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlersTestSuite) TestSchedulePost_BlankDateSendsNothing() {
	s.expectProjectLoad()

	rec := s.do(http.MethodPost, "/projects/1/posts/3/schedule", url.Values{"scheduled_at": {""}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `name="scheduled_at"`, "the overlay stays open")
}

func (s *HandlersTestSuite) TestSchedulePost() {
	s.expectProjectLoad()
	at := time.Date(2025, 7, 2, 10, 30, 0, 0, time.UTC)
	s.api.EXPECT().SchedulePost(gomock.Any(), int64(3), at).Return(&domain.Post{
		ID:          3,
		Status:      domain.PostStatusScheduled,
		ScheduledAt: domain.NewTimestamp(at),
	}, nil)

	rec := s.do(http.MethodPost, "/projects/1/posts/3/schedule", url.Values{"scheduled_at": {"2025-07-02T10:30"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "2025/07/02 10:30")
}

func (s *HandlersTestSuite) TestPostNow_Declined() {
	s.expectProjectLoad()

	rec := s.do(http.MethodPost, "/projects/1/posts/3/post-now", url.Values{})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlersTestSuite) TestGeneratePosts_UsesSelection() {
	s.expectProjectLoad()
	s.api.EXPECT().GeneratePosts(gomock.Any(), int64(1), domain.GenerateRequest{
		CharacterID: domain.Ptr(int64(2)),
		Language:    domain.LanguageEnglish,
	}).Return([]domain.Post{{ID: 30, Content: "fresh idea", Status: domain.PostStatusDraft}}, nil)

	rec := s.do(http.MethodPost, "/projects/1/generate-posts", url.Values{
		"character_id":      {"2"},
		"target_persona_id": {""},
		"language":          {domain.LanguageEnglish},
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "fresh idea")
}

func (s *HandlersTestSuite) TestGeneratePosts_MalformedIDSendsNothing() {
	rec := s.do(http.MethodPost, "/projects/1/generate-posts", url.Values{
		"character_id": {"abc"},
		"language":     {domain.LanguageJapanese},
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "入力内容の形式が正しくありません。")
}

func (s *HandlersTestSuite) TestShowProject_MalformedPostQuery() {
	rec := s.do(http.MethodGet, "/projects/1?post=abc&mode=schedule", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlersTestSuite) TestSchedulePost_UsesBrowserInstant() {
	s.expectProjectLoad()
	at := time.Date(2025, 7, 2, 14, 30, 0, 0, time.UTC)
	s.api.EXPECT().SchedulePost(gomock.Any(), int64(3), at).Return(&domain.Post{
		ID:          3,
		Status:      domain.PostStatusScheduled,
		ScheduledAt: domain.NewTimestamp(at),
	}, nil)

	rec := s.do(http.MethodPost, "/projects/1/posts/3/schedule", url.Values{
		"scheduled_at":     {"2025-07-02T10:30"},
		"scheduled_at_utc": {"2025-07-02T14:30:00.000Z"},
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "2025/07/02 14:30")
}

func (s *HandlersTestSuite) TestProjectNotFound() {
	s.api.EXPECT().GetProject(gomock.Any(), int64(1)).Return(nil, errNotFound())
	s.api.EXPECT().ListCharacters(gomock.Any()).Return(nil, nil).AnyTimes()
	s.api.EXPECT().ListTargetPersonas(gomock.Any()).Return(nil, nil).AnyTimes()

	rec := s.do(http.MethodGet, "/projects/1", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "プロジェクトが見つかりませんでした。")
}

func (s *HandlersTestSuite) TestCharacters_EditForm() {
	s.api.EXPECT().ListCharacters(gomock.Any()).Return([]domain.Character{{ID: 1, CharacterFields: domain.CharacterFields{Name: "Aiko", Title: domain.Ptr("広報")}}}, nil)

	rec := s.do(http.MethodGet, "/characters?edit=1", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `action="/characters/1"`)
	s.Contains(rec.Body.String(), `value="広報"`)
}

func (s *HandlersTestSuite) TestCharacters_Generate() {
	s.api.EXPECT().ListCharacters(gomock.Any()).Return(nil, nil)
	s.api.EXPECT().GenerateCharacterDetails(gomock.Any(), "新人広報").Return(domain.GeneratedFields{"name": domain.Ptr("Aiko")}, nil)

	rec := s.do(http.MethodPost, "/characters", url.Values{"action": {"generate"}, "seed_text": {"新人広報"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `value="Aiko"`)
}

func (s *HandlersTestSuite) TestTargets_Create() {
	s.api.EXPECT().ListTargetPersonas(gomock.Any()).Return(nil, nil)
	s.api.EXPECT().CreateTargetPersona(gomock.Any(), domain.TargetPersonaFields{Name: "学生"}).
		Return(&domain.TargetPersona{ID: 4, TargetPersonaFields: domain.TargetPersonaFields{Name: "学生"}}, nil)

	rec := s.do(http.MethodPost, "/targets", url.Values{"action": {"save"}, "name": {"学生"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "profile-4")
}

func (s *HandlersTestSuite) TestSaveSettings() {
	s.api.EXPECT().UpdateSetting(gomock.Any(), domain.SettingDefaultPostPrompt, "p").Return(&domain.Setting{}, nil)
	s.api.EXPECT().UpdateSetting(gomock.Any(), domain.SettingDefaultNotePrompt, "n").Return(&domain.Setting{}, nil)

	rec := s.do(http.MethodPost, "/settings", url.Values{"post_prompt": {"p"}, "note_prompt": {"n"}})

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "設定を保存しました！")
}

func (s *HandlersTestSuite) TestActivity() {
	s.activity.EXPECT().Recent(gomock.Any(), 20).Return([]domain.ActivityEvent{{
		ID: "e1", Method: "DELETE", Path: "/posts/3", Resource: "posts", StatusCode: 204, Outcome: domain.OutcomeSucceeded,
	}}, nil)
	s.activity.EXPECT().Tallies(gomock.Any()).Return(nil, nil)

	rec := s.do(http.MethodGet, "/activity", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "DELETE /posts/3")
}

func (s *HandlersTestSuite) TestActivity_DisabledWithoutJournal() {
	s.router = s.newRouter(nil)

	rec := s.do(http.MethodGet, "/activity", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}
