package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/logging"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserService interface {
	Save(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error)
}

type RegisterRequest struct {
	Email    string `validate:"required,email,max=255"`
	Name     string `validate:"required,max=255"`
	Password string `validate:"required,max=255"`
}

type UserHandler struct {
	page
	service  UserService
	sessions *Sessions
	validate *validator.Validate
}

func NewUserHandler(service UserService, sessions *Sessions, renderer Renderer, l logging.Logger) *UserHandler {
	return &UserHandler{
		page:     page{renderer: renderer, logger: l.With("module", "user_handler")},
		service:  service,
		sessions: sessions,
		validate: validator.New(),
	}
}

func (h *UserHandler) RegisterRoutes(router chi.Router) {
	router.Get("/users/register", h.handleRegistrationPage)
	router.Post("/users/register", h.handleRegister)
	router.Get("/users/login", h.handleLoginPage)
	router.Post("/users/login", h.handleLogin)
	router.Get("/users/logout", h.handleLogout)
}

func (h *UserHandler) handleRegistrationPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ViewRegister, nil)
}

func (h *UserHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, ViewRegister, map[string]any{"error": common.MessageInvalidForm})
		return
	}

	req := RegisterRequest{
		Email:    r.PostForm.Get("email"),
		Name:     r.PostForm.Get("name"),
		Password: r.PostForm.Get("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn(r.Context(), "Invalid registration form", "error", err)
		h.render(w, r, http.StatusBadRequest, ViewRegister, map[string]any{"error": common.MessageInvalidForm})
		return
	}

	user, err := h.service.Save(r.Context(), &models.User{Email: req.Email, Name: req.Name, Password: req.Password})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			h.fail(w, r, http.StatusConflict, common.MessageEmailTaken)
			return
		}
		h.logger.Error(r.Context(), "Failed to register user", "error", err)
		h.fail(w, r, http.StatusInternalServerError, common.MessageInternal)
		return
	}

	if err := h.sessions.Start(w, r, user); err != nil {
		h.logger.Error(r.Context(), "Failed to start session", "error", err)
		h.fail(w, r, http.StatusInternalServerError, common.MessageInternal)
		return
	}

	http.Redirect(w, r, "/vacancies", http.StatusFound)
}

func (h *UserHandler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ViewLogin, nil)
}

func (h *UserHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, ViewLogin, map[string]any{"error": common.MessageBadCredentials})
		return
	}

	user, err := h.service.FindByEmailAndPassword(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("password"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			h.render(w, r, http.StatusUnauthorized, ViewLogin, map[string]any{"error": common.MessageBadCredentials})
			return
		}
		h.logger.Error(r.Context(), "Failed to look up user", "error", err)
		h.fail(w, r, http.StatusInternalServerError, common.MessageInternal)
		return
	}

	if err := h.sessions.Start(w, r, user); err != nil {
		h.logger.Error(r.Context(), "Failed to start session", "error", err)
		h.fail(w, r, http.StatusInternalServerError, common.MessageInternal)
		return
	}

	http.Redirect(w, r, "/vacancies", http.StatusFound)
}

func (h *UserHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(w, r); err != nil {
		h.logger.Warn(r.Context(), "Failed to delete session", "error", err)
	}
	http.Redirect(w, r, "/users/login", http.StatusFound)
}
