package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/logging"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/dmitrijs2005/dreamjob/internal/server/session"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Save(ctx context.Context, u *models.User) (*models.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) GetFileByID(ctx context.Context, id int) (*models.FileDto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FileDto), args.Error(1)
}

type MockVacancyService struct {
	mock.Mock
}

func (m *MockVacancyService) Create(ctx context.Context, v *models.Vacancy, photo models.FileDto) (*models.Vacancy, error) {
	args := m.Called(ctx, v, photo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vacancy), args.Error(1)
}

func (m *MockVacancyService) Update(ctx context.Context, v *models.Vacancy, photo *models.FileDto) (bool, error) {
	args := m.Called(ctx, v, photo)
	return args.Bool(0), args.Error(1)
}

func (m *MockVacancyService) FindByID(ctx context.Context, id int) (*models.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vacancy), args.Error(1)
}

func (m *MockVacancyService) FindAll(ctx context.Context) ([]*models.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vacancy), args.Error(1)
}

func (m *MockVacancyService) DeleteByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCityService struct {
	mock.Mock
}

func (m *MockCityService) FindAll(ctx context.Context) ([]*models.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.City), args.Error(1)
}

func (m *MockCityService) FindByID(ctx context.Context, id int) (*models.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.City), args.Error(1)
}

// recordingRenderer remembers the last view and model it was asked for.
type recordingRenderer struct {
	mu   sync.Mutex
	view string
	data map[string]any
}

func (r *recordingRenderer) Render(w io.Writer, view string, data map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = view
	r.data = data
	_, err := io.WriteString(w, view)
	return err
}

type testEnv struct {
	router    http.Handler
	renderer  *recordingRenderer
	store     *session.MemoryStore
	sessions  *Sessions
	users     *MockUserService
	files     *MockFileService
	vacancies *MockVacancyService
	cities    *MockCityService
}

const testSecret = "test-secret"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		renderer:  &recordingRenderer{},
		store:     session.NewMemoryStore(time.Hour),
		users:     new(MockUserService),
		files:     new(MockFileService),
		vacancies: new(MockVacancyService),
		cities:    new(MockCityService),
	}
	env.sessions = NewSessions(env.store, testSecret, time.Hour, logging.Nop())
	env.router = NewRouter(Deps{
		Logger:    logging.Nop(),
		Renderer:  env.renderer,
		Sessions:  env.sessions,
		Users:     env.users,
		Files:     env.files,
		Vacancies: env.vacancies,
		Cities:    env.cities,
	})

	t.Cleanup(func() {
		env.users.AssertExpectations(t)
		env.files.AssertExpectations(t)
		env.vacancies.AssertExpectations(t)
		env.cities.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// login opens a session for user and returns its cookie.
func (e *testEnv) login(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	require.NoError(t, e.sessions.Start(rr, httptest.NewRequest(http.MethodGet, "/", nil), user))
	return sessionCookie(t, rr)
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == common.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", common.SessionCookieName)
	return nil
}
