package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/Vaibhavmishra08/urlshortner/internal/entity"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type linkUseCase interface {
	Shorten(raw string) (*entity.Link, error)
	Resolve(alias string) (*entity.Link, error)
	Links() []*entity.Link
	Stats() entity.RegistryStats
}

type linkHandler struct {
	useCase  linkUseCase
	validate *validator.Validate
	baseURL  string
}

func newLinkHandler(useCase linkUseCase, validate *validator.Validate, baseURL string) *linkHandler {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &linkHandler{
		useCase:  useCase,
		validate: validate,
		baseURL:  baseURL,
	}
}

func (h *linkHandler) shorten(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return
	}

	link, err := h.useCase.Shorten(req.Destination)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyDestination) || errors.Is(err, entity.ErrInvalidDestination) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, destinationErrorResponse(err))
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toLinkResponse(h.baseURL, link))
}

func (h *linkHandler) resolve(w http.ResponseWriter, r *http.Request) {
	alias := chi.URLParam(r, "alias")

	link, err := h.useCase.Resolve(alias)
	if err != nil {
		if errors.Is(err, entity.ErrAliasNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, aliasNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toLinkResponse(h.baseURL, link))
}

// redirect resolves the alias like resolve does, counting the visit, but
// answers with a 307 to the destination instead of a JSON payload.
func (h *linkHandler) redirect(w http.ResponseWriter, r *http.Request) {
	alias := chi.URLParam(r, "alias")

	link, err := h.useCase.Resolve(alias)
	if err != nil {
		if errors.Is(err, entity.ErrAliasNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, aliasNotFoundResponse)
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	http.Redirect(w, r, link.Destination, http.StatusTemporaryRedirect)
}

func (h *linkHandler) list(w http.ResponseWriter, r *http.Request) {
	links := h.useCase.Links()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toLinkListResponse(h.baseURL, links))
}

func (h *linkHandler) stats(w http.ResponseWriter, r *http.Request) {
	stats := h.useCase.Stats()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toStatsResponse(stats))
}
