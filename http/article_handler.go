package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"investsim/service"
)

type ArticleHandler struct {
	service *service.ArticleService
	logger  *slog.Logger
}

func NewArticleHandler(service *service.ArticleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{service: service, logger: logger.With("module", "articles")}
}

// List serves GET /api/articles. A tags filter takes precedence over limit.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if raw := query.Get("tags"); raw != "" {
		articles, err := h.service.ByTags(r.Context(), service.SplitTags(raw))
		h.respond(w, articles, err)
		return
	}

	if query.Has("limit") {
		limit, ok := h.parseLimit(w, query.Get("limit"))
		if !ok {
			return
		}
		articles, err := h.service.Recent(r.Context(), limit)
		h.respond(w, articles, err)
		return
	}

	articles, err := h.service.List(r.Context())
	h.respond(w, articles, err)
}

func (h *ArticleHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultRecentArticles
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var ok bool
		if limit, ok = h.parseLimit(w, raw); !ok {
			return
		}
	}

	articles, err := h.service.Recent(r.Context(), limit)
	h.respond(w, articles, err)
}

func (h *ArticleHandler) BySlug(w http.ResponseWriter, r *http.Request) {
	article, err := h.service.BySlug(r.Context(), chi.URLParam(r, "slug"))
	h.respond(w, article, err)
}

func (h *ArticleHandler) parseLimit(w http.ResponseWriter, raw string) (int, bool) {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		writeError(w, h.logger, http.StatusBadRequest, "limit must be a positive integer", nil)
		return 0, false
	}
	return limit, true
}

func (h *ArticleHandler) respond(w http.ResponseWriter, v any, err error) {
	switch {
	case err == nil:
		writeJSON(w, h.logger, http.StatusOK, v)
	case errors.Is(err, service.ErrArticleNotFound):
		writeError(w, h.logger, http.StatusNotFound, "Artigo não encontrado", nil)
	case errors.Is(err, service.ErrInvalidArticleLimit):
		writeError(w, h.logger, http.StatusBadRequest, "limit must be a positive integer", nil)
	case errors.Is(err, service.ErrArticlesUnavailable):
		writeError(w, h.logger, http.StatusServiceUnavailable, "Não foi possível carregar a lista de artigos", nil)
	default:
		h.logger.Error("article request failed", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error", nil)
	}
}
