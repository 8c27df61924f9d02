// Copyright (c) 2026 Codeflix. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codeflix/catalog/internal/platform/middleware"
	requestutil "github.com/codeflix/catalog/internal/platform/request"
	"github.com/codeflix/catalog/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.With(middleware.RequireAuth()).Post("/logout", handler.logout)
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var payload loginPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	out, err := handler.service.Login(request.Context(), LoginInput{
		Username: payload.Username,
		Password: payload.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, out)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), claims); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
