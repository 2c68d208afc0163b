package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/logging"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxUploadSize = 10 << 20

type VacancyService interface {
	Create(ctx context.Context, vacancy *models.Vacancy, photo models.FileDto) (*models.Vacancy, error)
	Update(ctx context.Context, vacancy *models.Vacancy, photo *models.FileDto) (bool, error)
	FindByID(ctx context.Context, id int) (*models.Vacancy, error)
	FindAll(ctx context.Context) ([]*models.Vacancy, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

type CityService interface {
	FindAll(ctx context.Context) ([]*models.City, error)
	FindByID(ctx context.Context, id int) (*models.City, error)
}

type VacancyRequest struct {
	ID          int
	Title       string `validate:"required,max=255"`
	Description string `validate:"max=4000"`
	CityID      int    `validate:"gt=0"`
	Visible     bool
}

type VacancyHandler struct {
	page
	vacancies VacancyService
	cities    CityService
	validate  *validator.Validate
}

func NewVacancyHandler(vacancies VacancyService, cities CityService, renderer Renderer, l logging.Logger) *VacancyHandler {
	return &VacancyHandler{
		page:      page{renderer: renderer, logger: l.With("module", "vacancy_handler")},
		vacancies: vacancies,
		cities:    cities,
		validate:  validator.New(),
	}
}

func (h *VacancyHandler) RegisterRoutes(router chi.Router) {
	router.Get("/vacancies", h.handleList)
	router.Get("/vacancies/create", h.handleCreationPage)
	router.Post("/vacancies/create", h.handleCreate)
	router.Get("/vacancies/{id}", h.handleGetByID)
	router.Post("/vacancies/update", h.handleUpdate)
	router.Get("/vacancies/delete/{id}", h.handleDelete)
}

func (h *VacancyHandler) handleList(w http.ResponseWriter, r *http.Request) {
	vacancies, err := h.vacancies.FindAll(r.Context())
	if err != nil {
		h.internal(w, r, "Failed to list vacancies", err)
		return
	}
	cities, err := h.cities.FindAll(r.Context())
	if err != nil {
		h.internal(w, r, "Failed to list cities", err)
		return
	}

	names := make(map[int]string, len(cities))
	for _, c := range cities {
		names[c.ID] = c.Name
	}

	h.render(w, r, http.StatusOK, ViewVacancyList, map[string]any{
		"vacancies": vacancies,
		"cityNames": names,
	})
}

func (h *VacancyHandler) handleCreationPage(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cities.FindAll(r.Context())
	if err != nil {
		h.internal(w, r, "Failed to list cities", err)
		return
	}
	h.render(w, r, http.StatusOK, ViewVacancyCreate, map[string]any{"cities": cities})
}

func (h *VacancyHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, photo, err := h.parseForm(r)
	if err != nil {
		h.logger.Warn(r.Context(), "Invalid vacancy form", "error", err)
		h.fail(w, r, http.StatusBadRequest, common.MessageInvalidForm)
		return
	}
	if !h.checkCity(w, r, req.CityID) {
		return
	}

	_, err = h.vacancies.Create(r.Context(), req.vacancy(), photo)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			h.invalid(w, r, err)
			return
		}
		h.internal(w, r, "Failed to create vacancy", err)
		return
	}

	http.Redirect(w, r, "/vacancies", http.StatusFound)
}

func (h *VacancyHandler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, http.StatusNotFound, common.MessageVacancyNotFound)
		return
	}

	vacancy, err := h.vacancies.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.fail(w, r, http.StatusNotFound, common.MessageVacancyNotFound)
			return
		}
		h.internal(w, r, "Failed to get vacancy", err)
		return
	}

	cities, err := h.cities.FindAll(r.Context())
	if err != nil {
		h.internal(w, r, "Failed to list cities", err)
		return
	}

	h.render(w, r, http.StatusOK, ViewVacancyOne, map[string]any{
		"vacancy": vacancy,
		"cities":  cities,
	})
}

func (h *VacancyHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	req, photo, err := h.parseForm(r)
	if err != nil || req.ID <= 0 {
		h.logger.Warn(r.Context(), "Invalid vacancy form", "error", err)
		h.fail(w, r, http.StatusBadRequest, common.MessageInvalidForm)
		return
	}
	if !h.checkCity(w, r, req.CityID) {
		return
	}

	var newPhoto *models.FileDto
	if len(photo.Content) > 0 {
		newPhoto = &photo
	}

	ok, err := h.vacancies.Update(r.Context(), req.vacancy(), newPhoto)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			h.invalid(w, r, err)
			return
		}
		h.internal(w, r, "Failed to update vacancy", err)
		return
	}
	if !ok {
		h.fail(w, r, http.StatusNotFound, common.MessageVacancyNotUpdated)
		return
	}

	http.Redirect(w, r, "/vacancies", http.StatusFound)
}

func (h *VacancyHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, http.StatusNotFound, common.MessageVacancyNotFound)
		return
	}

	ok, err := h.vacancies.DeleteByID(r.Context(), id)
	if err != nil {
		h.internal(w, r, "Failed to delete vacancy", err)
		return
	}
	if !ok {
		h.fail(w, r, http.StatusNotFound, common.MessageVacancyNotFound)
		return
	}

	http.Redirect(w, r, "/vacancies", http.StatusFound)
}

// checkCity answers 400 and returns false when the form names an unknown city.
func (h *VacancyHandler) checkCity(w http.ResponseWriter, r *http.Request, id int) bool {
	if _, err := h.cities.FindByID(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.invalid(w, r, err)
			return false
		}
		h.internal(w, r, "Failed to look up city", err)
		return false
	}
	return true
}

func (h *VacancyHandler) invalid(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Warn(r.Context(), "Invalid vacancy form", "error", err)
	h.fail(w, r, http.StatusBadRequest, common.MessageInvalidForm)
}

func (h *VacancyHandler) internal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(r.Context(), msg, "error", err)
	h.fail(w, r, http.StatusInternalServerError, common.MessageInternal)
}

// parseForm reads the multipart vacancy form. The "file" part is optional.
func (h *VacancyHandler) parseForm(r *http.Request) (VacancyRequest, models.FileDto, error) {
	var (
		req   VacancyRequest
		photo models.FileDto
	)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return req, photo, err
	}

	req.Title = r.FormValue("title")
	req.Description = r.FormValue("description")
	switch r.FormValue("visible") {
	case "on", "true":
		req.Visible = true
	}

	var err error
	if id := r.FormValue("id"); id != "" {
		if req.ID, err = strconv.Atoi(id); err != nil {
			return req, photo, err
		}
	}
	if req.CityID, err = strconv.Atoi(r.FormValue("cityId")); err != nil {
		return req, photo, err
	}

	if err := h.validate.Struct(req); err != nil {
		return req, photo, err
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return req, photo, nil
		}
		return req, photo, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return req, photo, err
	}
	photo = models.FileDto{Name: header.Filename, Content: content}

	return req, photo, nil
}

func (v VacancyRequest) vacancy() *models.Vacancy {
	return &models.Vacancy{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Visible:     v.Visible,
		CityID:      v.CityID,
	}
}
