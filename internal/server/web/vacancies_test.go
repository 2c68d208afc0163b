package web

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCities = []*models.City{{ID: 1, Name: "Москва"}, {ID: 2, Name: "Санкт-Петербург"}}

func authed(t *testing.T, env *testEnv, req *http.Request) *http.Request {
	t.Helper()
	req.AddCookie(env.login(t, &models.User{ID: 1, Email: "mail@mail.ru", Name: "Ivan"}))
	return req
}

func multipartRequest(t *testing.T, target string, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestVacancyHandler_RequiresLogin(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/vacancies", "/vacancies/create", "/vacancies/1", "/vacancies/delete/1"} {
		rr := env.do(httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusFound, rr.Code, path)
		assert.Equal(t, "/users/login", rr.Header().Get("Location"), path)
	}
}

func TestVacancyHandler_List(t *testing.T) {
	env := newTestEnv(t)
	list := []*models.Vacancy{{ID: 1, Title: "Go", CityID: 2}}

	env.vacancies.On("FindAll", mock.Anything).Return(list, nil).Once()
	env.cities.On("FindAll", mock.Anything).Return(testCities, nil).Once()

	rr := env.do(authed(t, env, httptest.NewRequest(http.MethodGet, "/vacancies", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ViewVacancyList, env.renderer.view)
	assert.Equal(t, list, env.renderer.data["vacancies"])
	assert.Equal(t, map[int]string{1: "Москва", 2: "Санкт-Петербург"}, env.renderer.data["cityNames"])
	assert.Equal(t, "Ivan", env.renderer.data["user"].(*models.User).Name)
}

func TestVacancyHandler_CreationPage(t *testing.T) {
	env := newTestEnv(t)
	env.cities.On("FindAll", mock.Anything).Return(testCities, nil).Once()

	rr := env.do(authed(t, env, httptest.NewRequest(http.MethodGet, "/vacancies/create", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ViewVacancyCreate, env.renderer.view)
	assert.Equal(t, testCities, env.renderer.data["cities"])
}

func TestVacancyHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	env.cities.On("FindByID", mock.Anything, 1).Return(testCities[0], nil).Once()

	want := &models.Vacancy{Title: "Go developer", Description: "remote", Visible: true, CityID: 1}
	env.vacancies.On("Create", mock.Anything, mock.MatchedBy(func(v *models.Vacancy) bool {
		return cmp.Equal(want, v)
	}), models.FileDto{Name: "logo.png", Content: []byte("img")}).Return(&models.Vacancy{ID: 1}, nil).Once()

	req := multipartRequest(t, "/vacancies/create", map[string]string{
		"title": "Go developer", "description": "remote", "cityId": "1", "visible": "on",
	}, "logo.png", []byte("img"))
	rr := env.do(authed(t, env, req))

	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/vacancies", rr.Header().Get("Location"))
}

func TestVacancyHandler_CreateInvalid(t *testing.T) {
	env := newTestEnv(t)

	req := multipartRequest(t, "/vacancies/create", map[string]string{"title": "", "cityId": "1"}, "", nil)
	rr := env.do(authed(t, env, req))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ViewError, env.renderer.view)
	assert.Equal(t, common.MessageInvalidForm, env.renderer.data["message"])
}

func TestVacancyHandler_CreateFails(t *testing.T) {
	env := newTestEnv(t)
	env.cities.On("FindByID", mock.Anything, 1).Return(testCities[0], nil).Once()
	env.vacancies.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("tx aborted")).Once()

	req := multipartRequest(t, "/vacancies/create", map[string]string{"title": "Go", "cityId": "1"}, "a.png", []byte("x"))
	rr := env.do(authed(t, env, req))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, ViewError, env.renderer.view)
	assert.Equal(t, common.MessageInternal, env.renderer.data["message"])
}

func TestVacancyHandler_UnknownCity(t *testing.T) {
	for _, target := range []string{"/vacancies/create", "/vacancies/update"} {
		t.Run(target, func(t *testing.T) {
			env := newTestEnv(t)
			env.cities.On("FindByID", mock.Anything, 42).Return(nil, common.ErrorNotFound).Once()

			req := multipartRequest(t, target, map[string]string{"id": "3", "title": "Go", "cityId": "42"}, "a.png", []byte("x"))
			rr := env.do(authed(t, env, req))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, ViewError, env.renderer.view)
			assert.Equal(t, common.MessageInvalidForm, env.renderer.data["message"])
			env.vacancies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			env.vacancies.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestVacancyHandler_CreateRejectedByStore(t *testing.T) {
	env := newTestEnv(t)
	env.cities.On("FindByID", mock.Anything, 1).Return(testCities[0], nil).Once()
	env.vacancies.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("error saving vacancy: %w", common.ErrorValidation)).Once()

	req := multipartRequest(t, "/vacancies/create", map[string]string{"title": "Go", "cityId": "1"}, "a.png", []byte("x"))
	rr := env.do(authed(t, env, req))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, common.MessageInvalidForm, env.renderer.data["message"])
}

func TestVacancyHandler_GetByID(t *testing.T) {
	env := newTestEnv(t)
	v := &models.Vacancy{ID: 3, Title: "Go", CreationDate: time.Now(), CityID: 1, FileID: 9}

	env.vacancies.On("FindByID", mock.Anything, 3).Return(v, nil).Once()
	env.cities.On("FindAll", mock.Anything).Return(testCities, nil).Once()

	rr := env.do(authed(t, env, httptest.NewRequest(http.MethodGet, "/vacancies/3", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ViewVacancyOne, env.renderer.view)
	assert.Equal(t, v, env.renderer.data["vacancy"])
	assert.Equal(t, testCities, env.renderer.data["cities"])
}

func TestVacancyHandler_GetByID_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.vacancies.On("FindByID", mock.Anything, 42).Return(nil, common.ErrorNotFound).Once()

	rr := env.do(authed(t, env, httptest.NewRequest(http.MethodGet, "/vacancies/42", nil)))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, ViewError, env.renderer.view)
	assert.Equal(t, "Вакансия с указанным идентификатором не найдена", env.renderer.data["message"])

	rr = env.do(authed(t, env, httptest.NewRequest(http.MethodGet, "/vacancies/abc", nil)))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestVacancyHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	env.cities.On("FindByID", mock.Anything, 2).Return(testCities[1], nil).Once()

	env.vacancies.On("Update", mock.Anything, mock.MatchedBy(func(v *models.Vacancy) bool {
		return v.ID == 3 && v.Title == "Senior Go" && v.CityID == 2 && !v.Visible
	}), (*models.FileDto)(nil)).Return(true, nil).Once()

	req := multipartRequest(t, "/vacancies/update", map[string]string{"id": "3", "title": "Senior Go", "cityId": "2"}, "", nil)
	rr := env.do(authed(t, env, req))

	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/vacancies", rr.Header().Get("Location"))
}

func TestVacancyHandler_UpdateWithPhoto(t *testing.T) {
	env := newTestEnv(t)
	env.cities.On("FindByID", mock.Anything, 1).Return(testCities[0], nil).Once()

	env.vacancies.On("Update", mock.Anything, mock.Anything,
		&models.FileDto{Name: "new.png", Content: []byte("new")}).Return(true, nil).Once()

	req := multipartRequest(t, "/vacancies/update", map[string]string{"id": "3", "title": "Go", "cityId": "1"}, "new.png", []byte("new"))
	rr := env.do(authed(t, env, req))

	require.Equal(t, http.StatusFound, rr.Code)
}

func TestVacancyHandler_UpdateUnknown(t *testing.T) {
	env := newTestEnv(t)
	env.cities.On("FindByID", mock.Anything, 1).Return(testCities[0], nil).Once()
	env.vacancies.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()

	req := multipartRequest(t, "/vacancies/update", map[string]string{"id": "99", "title": "Go", "cityId": "1"}, "", nil)
	rr := env.do(authed(t, env, req))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, ViewError, env.renderer.view)
	assert.Equal(t, common.MessageVacancyNotUpdated, env.renderer.data["message"])
}

func TestVacancyHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	env.vacancies.On("DeleteByID", mock.Anything, 3).Return(true, nil).Once()
	env.vacancies.On("DeleteByID", mock.Anything, 4).Return(false, nil).Once()

	rr := env.do(authed(t, env, httptest.NewRequest(http.MethodGet, "/vacancies/delete/3", nil)))
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/vacancies", rr.Header().Get("Location"))

	rr = env.do(authed(t, env, httptest.NewRequest(http.MethodGet, "/vacancies/delete/4", nil)))
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, common.MessageVacancyNotFound, env.renderer.data["message"])
}
