package web

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/dreamjob/internal/common"
	"github.com/dmitrijs2005/dreamjob/internal/logging"
	"github.com/dmitrijs2005/dreamjob/internal/server/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

type FileService interface {
	GetFileByID(ctx context.Context, id int) (*models.FileDto, error)
}

type FileHandler struct {
	service FileService
	logger  logging.Logger
}

func NewFileHandler(service FileService, l logging.Logger) *FileHandler {
	return &FileHandler{service: service, logger: l.With("module", "file_handler")}
}

func (h *FileHandler) RegisterRoutes(router chi.Router) {
	router.Get("/files/{id}", h.handleGetByID)
}

// handleGetByID streams the stored bytes. Unknown and non-numeric ids get
// an empty 404.
func (h *FileHandler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	file, err := h.service.GetFileByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		h.logger.Error(r.Context(), "Failed to read file", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mimetype.Detect(file.Content).String())
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	if file.Name != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": file.Name}))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}
