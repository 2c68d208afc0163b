package web

import (
	"net/http"

	"github.com/dmitrijs2005/dreamjob/internal/logging"
	"github.com/go-chi/chi/v5"
)

type IndexHandler struct {
	page
}

func NewIndexHandler(renderer Renderer, l logging.Logger) *IndexHandler {
	return &IndexHandler{page: page{renderer: renderer, logger: l.With("module", "index_handler")}}
}

func (h *IndexHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.handleIndex)
	router.Get("/index", h.handleIndex)
}

func (h *IndexHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, ViewIndex, nil)
}
