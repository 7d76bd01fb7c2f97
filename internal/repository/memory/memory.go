// Package memory 提供仓储接口的内存实现，供测试使用，非并发安全
package memory

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"sort"
)

type LessonStore struct {
	nextID  uint
	Lessons map[uint]*model.Lesson
}

func NewLessonStore(ids ...uint) *LessonStore {
	m := &LessonStore{Lessons: map[uint]*model.Lesson{}}
	for _, id := range ids {
		m.Lessons[id] = &model.Lesson{BaseModel: model.BaseModel{ID: id}, Title: "Lesson", Content: "c", Level: "A1"}
		if id > m.nextID {
			m.nextID = id
		}
	}
	return m
}

func (m *LessonStore) List(ctx context.Context) ([]model.Lesson, error) {
	out := make([]model.Lesson, 0, len(m.Lessons))
	for _, l := range m.Lessons {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *LessonStore) FindByID(ctx context.Context, id uint) (*model.Lesson, error) {
	l, ok := m.Lessons[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *LessonStore) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := m.Lessons[id]
	return ok, nil
}

func (m *LessonStore) Create(ctx context.Context, lesson *model.Lesson) error {
	m.nextID++
	lesson.ID = m.nextID
	cp := *lesson
	m.Lessons[lesson.ID] = &cp
	return nil
}

func (m *LessonStore) Update(ctx context.Context, lesson *model.Lesson) error {
	if _, ok := m.Lessons[lesson.ID]; !ok {
		return util.ErrNotFound
	}
	cp := *lesson
	m.Lessons[lesson.ID] = &cp
	return nil
}

func (m *LessonStore) Delete(ctx context.Context, id uint) error {
	if _, ok := m.Lessons[id]; !ok {
		return util.ErrNotFound
	}
	delete(m.Lessons, id)
	return nil
}

type VocabularyStore struct {
	nextID uint
	Items  map[uint]model.Vocabulary
}

func NewVocabularyStore() *VocabularyStore {
	return &VocabularyStore{Items: map[uint]model.Vocabulary{}}
}

func (m *VocabularyStore) ListByLesson(ctx context.Context, lessonID uint) ([]model.Vocabulary, error) {
	var out []model.Vocabulary
	for _, v := range m.Items {
		if v.LessonID == lessonID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *VocabularyStore) Create(ctx context.Context, item *model.Vocabulary) error {
	m.nextID++
	item.ID = m.nextID
	m.Items[item.ID] = *item
	return nil
}

func (m *VocabularyStore) Delete(ctx context.Context, id uint) error {
	if _, ok := m.Items[id]; !ok {
		return util.ErrNotFound
	}
	delete(m.Items, id)
	return nil
}

type QuizStore struct {
	nextID       uint
	nextQuestion uint
	nextAnswer   uint
	Quizzes      map[uint]model.Quiz
	FindErr      error
}

func NewQuizStore(quizzes ...model.Quiz) *QuizStore {
	m := &QuizStore{Quizzes: map[uint]model.Quiz{}}
	for _, q := range quizzes {
		m.Quizzes[q.ID] = q
		if q.ID > m.nextID {
			m.nextID = q.ID
		}
	}
	return m
}

func (m *QuizStore) List(ctx context.Context) ([]model.Quiz, error) {
	out := make([]model.Quiz, 0, len(m.Quizzes))
	for _, q := range m.Quizzes {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *QuizStore) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	q, ok := m.Quizzes[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	return &q, nil
}

func (m *QuizStore) assignIDs(quiz *model.Quiz) {
	for i := range quiz.Questions {
		m.nextQuestion++
		quiz.Questions[i].ID = m.nextQuestion
		quiz.Questions[i].QuizID = quiz.ID
		for j := range quiz.Questions[i].Answers {
			m.nextAnswer++
			quiz.Questions[i].Answers[j].ID = m.nextAnswer
			quiz.Questions[i].Answers[j].QuestionID = quiz.Questions[i].ID
		}
	}
}

func (m *QuizStore) Create(ctx context.Context, quiz *model.Quiz) error {
	m.nextID++
	quiz.ID = m.nextID
	m.assignIDs(quiz)
	m.Quizzes[quiz.ID] = *quiz
	return nil
}

func (m *QuizStore) Replace(ctx context.Context, quiz *model.Quiz) error {
	if _, ok := m.Quizzes[quiz.ID]; !ok {
		return util.ErrNotFound
	}
	m.assignIDs(quiz)
	m.Quizzes[quiz.ID] = *quiz
	return nil
}

func (m *QuizStore) Delete(ctx context.Context, id uint) error {
	if _, ok := m.Quizzes[id]; !ok {
		return util.ErrNotFound
	}
	delete(m.Quizzes, id)
	return nil
}

type QuizResultStore struct {
	Rows      []model.QuizResult
	CreateErr error
}

func (m *QuizResultStore) Create(ctx context.Context, result *model.QuizResult) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if result.ID == "" {
		result.ID = model.GenerateUUID()
	}
	m.Rows = append(m.Rows, *result)
	return nil
}

func (m *QuizResultStore) ListByUser(ctx context.Context, userID string) ([]model.QuizResult, error) {
	var out []model.QuizResult
	for i := len(m.Rows) - 1; i >= 0; i-- {
		if m.Rows[i].UserID == userID {
			out = append(out, m.Rows[i])
		}
	}
	return out, nil
}

type ProgressStore struct {
	Rows map[string]model.Progress
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{Rows: map[string]model.Progress{}}
}

func (m *ProgressStore) List(ctx context.Context) ([]model.Progress, error) {
	out := make([]model.Progress, 0, len(m.Rows))
	for _, p := range m.Rows {
		out = append(out, p)
	}
	return out, nil
}

func (m *ProgressStore) ListByUser(ctx context.Context, userID string) ([]model.Progress, error) {
	var out []model.Progress
	for _, p := range m.Rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *ProgressStore) ListByLesson(ctx context.Context, lessonID uint) ([]model.Progress, error) {
	var out []model.Progress
	for _, p := range m.Rows {
		if p.LessonID == lessonID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *ProgressStore) FindByID(ctx context.Context, id string) (*model.Progress, error) {
	p, ok := m.Rows[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	return &p, nil
}

func (m *ProgressStore) Upsert(ctx context.Context, p *model.Progress) (bool, error) {
	for id, existing := range m.Rows {
		if existing.UserID == p.UserID && existing.LessonID == p.LessonID {
			existing.Completed = p.Completed
			existing.Progress = p.Progress
			m.Rows[id] = existing
			*p = existing
			return false, nil
		}
	}
	p.ID = model.GenerateUUID()
	m.Rows[p.ID] = *p
	return true, nil
}

func (m *ProgressStore) Delete(ctx context.Context, id string) error {
	if _, ok := m.Rows[id]; !ok {
		return util.ErrNotFound
	}
	delete(m.Rows, id)
	return nil
}

type UserStore struct {
	Users map[string]model.User
}

func NewUserStore(users ...model.User) *UserStore {
	m := &UserStore{Users: map[string]model.User{}}
	for _, u := range users {
		m.Users[u.ID] = u
	}
	return m
}

func (m *UserStore) Create(ctx context.Context, user *model.User) error {
	for _, u := range m.Users {
		if u.Email == user.Email || u.Username == user.Username {
			return util.ErrConflict
		}
	}
	if user.ID == "" {
		user.ID = model.GenerateUUID()
	}
	m.Users[user.ID] = *user
	return nil
}

func (m *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := m.Users[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	return &u, nil
}

func (m *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range m.Users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, util.ErrNotFound
}

func (m *UserStore) FindByRefreshToken(ctx context.Context, token string) (*model.User, error) {
	for _, u := range m.Users {
		if u.RefreshToken != "" && u.RefreshToken == token {
			return &u, nil
		}
	}
	return nil, util.ErrNotFound
}

func (m *UserStore) ExistsByEmailOrUsername(ctx context.Context, email, username, excludeID string) (bool, error) {
	for id, u := range m.Users {
		if id == excludeID {
			continue
		}
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *UserStore) List(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.Users))
	for _, u := range m.Users {
		out = append(out, u)
	}
	return out, nil
}

func (m *UserStore) Update(ctx context.Context, user *model.User) error {
	existing, ok := m.Users[user.ID]
	if !ok {
		return util.ErrNotFound
	}
	user.RefreshToken = existing.RefreshToken
	user.IsAdmin = existing.IsAdmin
	m.Users[user.ID] = *user
	return nil
}

func (m *UserStore) UpdateRefreshToken(ctx context.Context, userID, token string) error {
	u, ok := m.Users[userID]
	if !ok {
		return util.ErrNotFound
	}
	u.RefreshToken = token
	m.Users[userID] = u
	return nil
}

func (m *UserStore) SetAdmin(ctx context.Context, userID string, isAdmin bool) error {
	u, ok := m.Users[userID]
	if !ok {
		return util.ErrNotFound
	}
	u.IsAdmin = isAdmin
	m.Users[userID] = u
	return nil
}

func (m *UserStore) Delete(ctx context.Context, id string) error {
	if _, ok := m.Users[id]; !ok {
		return util.ErrNotFound
	}
	delete(m.Users, id)
	return nil
}

type SettingStore struct {
	Values model.Settings
	Reads  int
}

func (m *SettingStore) All(ctx context.Context) (model.Settings, error) {
	m.Reads++
	out := make(model.Settings, len(m.Values))
	for k, v := range m.Values {
		out[k] = v
	}
	return out, nil
}

func (m *SettingStore) Upsert(ctx context.Context, settings model.Settings) error {
	if m.Values == nil {
		m.Values = model.Settings{}
	}
	for k, v := range settings {
		m.Values[k] = v
	}
	return nil
}

type SettingCache struct {
	Data        model.Settings
	Invalidated int
}

func (c *SettingCache) Get(ctx context.Context) (model.Settings, bool, error) {
	if c.Data == nil {
		return nil, false, nil
	}
	return c.Data, true, nil
}

func (c *SettingCache) Set(ctx context.Context, settings model.Settings) error {
	c.Data = settings
	return nil
}

func (c *SettingCache) Invalidate(ctx context.Context) error {
	c.Data = nil
	c.Invalidated++
	return nil
}
