package app

import (
	"bytes"
	"encoding/json"
	"english_station_backend/internal/config"
	"english_station_backend/internal/controller"
	"english_station_backend/internal/model"
	"english_station_backend/internal/repository/memory"
	"english_station_backend/internal/service"
	"english_station_backend/internal/util"
	"english_station_backend/pkg/security"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type testEnv struct {
	router  *gin.Engine
	cfg     *config.Config
	results *memory.QuizResultStore
	users   *memory.UserStore
}

func sampleQuiz() model.Quiz {
	quiz := model.Quiz{BaseModel: model.BaseModel{ID: 1}, Title: "Greetings", LessonID: 1}
	var answerID uint
	for q := uint(1); q <= 2; q++ {
		question := model.Question{ID: q, QuizID: 1, Content: fmt.Sprintf("Q%d", q), Type: util.QuestionTypeMultipleChoice}
		for i := 0; i < 2; i++ {
			answerID++
			question.Answers = append(question.Answers, model.Answer{
				ID:         answerID,
				QuestionID: q,
				Content:    fmt.Sprintf("A%d", answerID),
				IsCorrect:  i == 0,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT:       config.JWTConfig{Secret: "router-test-secret", ExpireTime: time.Hour},
		RateLimit: config.RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	lessons := memory.NewLessonStore(1)
	quizzes := memory.NewQuizStore(sampleQuiz())
	results := &memory.QuizResultStore{}
	progress := memory.NewProgressStore()
	users := memory.NewUserStore(
		model.User{UUIDBase: model.UUIDBase{ID: "learner-1"}, Email: "amy@example.com", Username: "amy", Level: "A1"},
		model.User{UUIDBase: model.UUIDBase{ID: "learner-2"}, Email: "bo@example.com", Username: "bo", Level: "A1"},
		model.User{UUIDBase: model.UUIDBase{ID: "admin-1"}, Email: "root@example.com", Username: "root", Level: "C2", IsAdmin: true},
	)

	ctrls := &controllers{
		auth:     controller.NewAuthController(service.NewAuthService(users, cfg)),
		user:     controller.NewUserController(service.NewUserService(users, progress, results)),
		lesson:   controller.NewLessonController(service.NewLessonService(lessons, memory.NewVocabularyStore())),
		quiz:     controller.NewQuizController(service.NewQuizService(quizzes, results, lessons)),
		progress: controller.NewProgressController(service.NewProgressService(progress, lessons, users)),
		setting:  controller.NewSettingController(service.NewSettingService(&memory.SettingStore{Values: model.Settings{"siteName": datatypes.JSON(`"English Station"`)}}, nil)),
		health:   controller.NewHealthController(nil),
	}

	return &testEnv{
		router:  newRouter(cfg, security.NewOriginList(cfg.CORS.AllowedOrigins), ctrls, users),
		cfg:     cfg,
		results: results,
		users:   users,
	}
}

func (e *testEnv) token(t *testing.T, userID string) string {
	t.Helper()
	user := e.users.Users[userID]
	token, err := util.GenerateJWT(&user, e.cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestSubmitQuiz_ScoresAndPersists(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]interface{}{
		"answers": []map[string]interface{}{
			{"questionId": 1, "answerId": 1},
			{"questionId": 2, "answerId": 4},
		},
	}
	w := env.do(t, http.MethodPost, "/api/quiz/1/submit", env.token(t, "learner-1"), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res service.SubmitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, 2, res.TotalQuestions)
	assert.Equal(t, 1, res.CorrectAnswers)

	require.Len(t, env.results.Rows, 1)
	assert.Equal(t, "learner-1", env.results.Rows[0].UserID)

	w = env.do(t, http.MethodGet, "/api/quiz/results/learner-1", env.token(t, "learner-1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []model.QuizResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history, 1)
}

func TestSubmitQuiz_Errors(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "learner-1")
	answers := map[string]interface{}{"answers": []interface{}{}}

	w := env.do(t, http.MethodPost, "/api/quiz/1/submit", "", answers)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/quiz/99/submit", token, answers)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Quiz not found"}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/quiz/abc/submit", token, answers)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/quiz/1/submit", token, map[string]interface{}{"answers": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 非管理员不能代他人提交
	w = env.do(t, http.MethodPost, "/api/quiz/1/submit", token, map[string]interface{}{"userId": "learner-2", "answers": []interface{}{}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.Empty(t, env.results.Rows)
}

func TestResults_OtherUserForbidden(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/quiz/results/learner-2", env.token(t, "learner-1"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/quiz/results/learner-2", env.token(t, "admin-1"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetQuiz_HidesCorrectFlagForLearners(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/quiz/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "isCorrect")
	assert.Contains(t, w.Body.String(), `"title":"Greetings"`)

	w = env.do(t, http.MethodGet, "/api/admin/quizzes/1", env.token(t, "learner-1"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/quizzes/1", env.token(t, "admin-1"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isCorrect":true`)
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	env := newTestEnv(t)
	lesson := map[string]interface{}{"title": "Travel", "content": "At the airport", "level": "A2"}

	w := env.do(t, http.MethodPost, "/api/lessons", "", lesson)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/lessons", env.token(t, "learner-1"), lesson)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/api/lessons", env.token(t, "admin-1"), lesson)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterLoginAndProfile(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"email": "cat@example.com", "username": "cat", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"email": "cat@example.com", "username": "cat2", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": "cat@example.com", "password": "wrong-pw"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": "cat@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		ID           string `json:"id"`
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.NotContains(t, w.Body.String(), "secret1")

	w = env.do(t, http.MethodGet, "/api/users/"+login.ID, login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/users/learner-1", login.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/api/users/refresh-token", "", map[string]string{"refreshToken": login.RefreshToken})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProgress_UpsertStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "learner-1")
	body := map[string]interface{}{"lessonId": 1, "completed": false, "progress": 40}

	w := env.do(t, http.MethodPost, "/api/progress", token, body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body["progress"] = 100
	body["completed"] = true
	w = env.do(t, http.MethodPost, "/api/progress", token, body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/progress/user/learner-1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []model.Progress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 100, rows[0].Progress)
}

func TestPublicSettings(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"siteName":"English Station"}`, w.Body.String())
}

func TestNoRoute_APIPath(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"API endpoint /api/unknown not found"}`, w.Body.String())
}

func TestCORS_AllowedOrigin(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/lessons", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminPanelRoutes(t *testing.T) {
	env := newTestEnv(t)
	admin := env.token(t, "admin-1")

	w := env.do(t, http.MethodGet, "/api/admin/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []model.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 3)

	w = env.do(t, http.MethodPost, "/api/admin/lessons", admin, map[string]string{"title": "Travel", "content": "At the airport", "level": "A2"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var lesson model.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lesson))

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/admin/lessons/%d", lesson.ID), admin, map[string]string{"title": "Travel 2", "content": "At the hotel", "level": "B1"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/lessons", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Travel 2"`)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/admin/lessons/%d", lesson.ID), admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodDelete, "/api/admin/users/learner-2", admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotContains(t, env.users.Users, "learner-2")

	w = env.do(t, http.MethodGet, "/api/admin/settings", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"siteName":"English Station"}`, w.Body.String())

	// 管理后台直接提交键值，不带 settings 包裹
	w = env.do(t, http.MethodPut, "/api/admin/settings", admin, map[string]interface{}{"maintenanceMode": false, "allowRegistration": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"siteName":"English Station","maintenanceMode":false,"allowRegistration":true}`, w.Body.String())

	for _, path := range []string{"/api/admin/users", "/api/admin/lessons", "/api/admin/settings"} {
		w = env.do(t, http.MethodGet, path, env.token(t, "learner-1"), nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestUpdateSettings_NonStringValues(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]interface{}{
		"settings": map[string]interface{}{"primaryColor": "#3B82F6", "darkMode": false, "fontScale": 1.25},
	}

	w := env.do(t, http.MethodPost, "/api/settings", env.token(t, "admin-1"), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"siteName":"English Station","primaryColor":"#3B82F6","darkMode":false,"fontScale":1.25}`, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/settings", env.token(t, "learner-1"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProgress_Ownership(t *testing.T) {
	env := newTestEnv(t)
	learner := env.token(t, "learner-1")
	admin := env.token(t, "admin-1")
	body := map[string]interface{}{"lessonId": 1, "progress": 10}

	w := env.do(t, http.MethodPost, "/api/progress", admin, body)
	require.Equal(t, http.StatusCreated, w.Code)
	var adminRow model.Progress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adminRow))

	w = env.do(t, http.MethodPost, "/api/progress", learner, body)
	require.Equal(t, http.StatusCreated, w.Code)
	var learnerRow model.Progress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &learnerRow))

	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/api/progress", learner, nil).Code)
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/api/progress/lesson/1", learner, nil).Code)
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/api/progress/user/admin-1", learner, nil).Code)

	w = env.do(t, http.MethodDelete, "/api/progress/"+adminRow.ID, learner, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/api/progress/missing", learner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/api/progress/"+learnerRow.ID, learner, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/progress", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []model.Progress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "admin-1", rows[0].UserID)

	w = env.do(t, http.MethodDelete, "/api/progress/"+adminRow.ID, admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDemotedAdminLosesAccess(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t, "admin-1")

	w := env.do(t, http.MethodPut, "/api/admin/users/admin-1/demote", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 旧令牌中仍带有管理员标记
	w = env.do(t, http.MethodGet, "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/quiz/results/learner-1", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
