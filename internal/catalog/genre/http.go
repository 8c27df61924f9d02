package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/codeflix/catalog/internal/platform/middleware"
	requestutil "github.com/codeflix/catalog/internal/platform/request"
	"github.com/codeflix/catalog/internal/platform/respond"
	"github.com/codeflix/catalog/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listGenres)
	router.Get("/{id}", handler.getGenre)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth())

		adminRoute.Post("/", handler.createGenre)
		adminRoute.Put("/{id}", handler.updateGenre)
		adminRoute.Delete("/{id}", handler.deleteGenre)
	})
}

type createPayload struct {
	Name       string   `json:"name"`
	IsActive   *bool    `json:"is_active"`
	Categories []string `json:"categories"`
}

// updatePayload keeps Categories as a pointer so that an absent field and an
// explicit empty list stay distinguishable after decoding.
type updatePayload struct {
	Name       string    `json:"name"`
	IsActive   *bool     `json:"is_active"`
	Categories *[]string `json:"categories"`
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	input := pagination.FromRequest(request)

	out, err := handler.service.List(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, out.Items, pagination.NewMeta(out.CurrentPage, out.PerPage, out.Total))
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	if uuid.Validate(id) != nil {
		respond.Error(writer, request, notFound(id))
		return
	}

	g, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, g)
}

func (handler *Handler) createGenre(writer http.ResponseWriter, request *http.Request) {
	var payload createPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	g, err := handler.service.Create(request.Context(), CreateInput{
		Name:       payload.Name,
		IsActive:   payload.IsActive,
		Categories: payload.Categories,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "/api/v1/genres/"+g.ID, g)
}

func (handler *Handler) updateGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	if uuid.Validate(id) != nil {
		respond.Error(writer, request, notFound(id))
		return
	}

	var payload updatePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	g, err := handler.service.Update(request.Context(), id, UpdateInput{
		Name:       payload.Name,
		IsActive:   payload.IsActive,
		Categories: payload.Categories,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, g)
}

func (handler *Handler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	if uuid.Validate(id) != nil {
		respond.Error(writer, request, notFound(id))
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
