package category

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
	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getCategory)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth())

		adminRoute.Post("/", handler.createCategory)
		adminRoute.Put("/{id}", handler.updateCategory)
		adminRoute.Delete("/{id}", handler.deleteCategory)
	})
}

// createPayload mirrors CreateInput on the wire. Pointer fields keep the
// absent/present distinction the service defaults depend on.
type createPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type updatePayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	input := pagination.FromRequest(request)

	out, err := handler.service.List(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, out.Items, pagination.NewMeta(out.CurrentPage, out.PerPage, out.Total))
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	if uuid.Validate(id) != nil {
		respond.Error(writer, request, notFound(id))
		return
	}

	cat, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cat)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var payload createPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	cat, err := handler.service.Create(request.Context(), CreateInput{
		Name:        payload.Name,
		Description: payload.Description,
		IsActive:    payload.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "/api/v1/categories/"+cat.ID, cat)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
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

	cat, err := handler.service.Update(request.Context(), id, UpdateInput{
		Name:        payload.Name,
		Description: payload.Description,
		IsActive:    payload.IsActive,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cat)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
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
