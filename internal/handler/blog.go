package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/bloglist/internal/ctxkeys"
	"github.com/templui/bloglist/internal/ident"
	"github.com/templui/bloglist/internal/model"
	"github.com/templui/bloglist/internal/repository"
	"github.com/templui/bloglist/internal/service"
	"github.com/templui/bloglist/internal/validation"
)

type BlogHandler struct {
	blogService  *service.BlogService
	maxBodyBytes int64
}

func NewBlogHandler(blogService *service.BlogService, maxBodyBytes int64) *BlogHandler {
	return &BlogHandler{
		blogService:  blogService,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.Blogs(r.Context())
	if err != nil {
		h.fail(w, r, err, "failed to list blogs")
		return
	}

	writeJSON(w, r, http.StatusOK, blogs)
}

func (h *BlogHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	blog, err := h.blogService.ByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "failed to get blog", "blog_id", id)
		return
	}

	writeJSON(w, r, http.StatusOK, blog)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.BlogInput
	if !h.decode(w, r, &in) {
		return
	}

	blog, err := h.blogService.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, "failed to create blog")
		return
	}

	w.Header().Set("Location", "/api/blogs/"+blog.ID)
	writeJSON(w, r, http.StatusCreated, blog)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var in model.BlogInput
	if !h.decode(w, r, &in) {
		return
	}

	blog, err := h.blogService.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err, "failed to update blog", "blog_id", id)
		return
	}

	writeJSON(w, r, http.StatusOK, blog)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.blogService.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "failed to delete blog", "blog_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeJSON(w, r, h.maxBodyBytes, dst)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}

	writeError(w, r, http.StatusBadRequest, "malformed JSON body")
	return false
}

// fail maps service errors to status codes. Only unexpected errors are logged.
func (h *BlogHandler) fail(w http.ResponseWriter, r *http.Request, err error, msg string, attrs ...any) {
	var verr *validation.ValidationError

	switch {
	case errors.As(err, &verr):
		writeError(w, r, http.StatusBadRequest, verr.Error())
	case errors.Is(err, ident.ErrMalformedID):
		writeError(w, r, http.StatusBadRequest, ident.ErrMalformedID.Error())
	case errors.Is(err, repository.ErrBlogNotFound):
		writeError(w, r, http.StatusNotFound, repository.ErrBlogNotFound.Error())
	default:
		attrs = append(attrs, "error", err, "request_id", ctxkeys.RequestID(r.Context()))
		slog.Error(msg, attrs...)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
