// Copyright (c) 2026 Codeflix. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses. Success
// bodies are the projections themselves, lists carry inline pagination
// metadata, and every failure is translated here, and only here, from an error
// value into a problem-shaped JSON body. No handler or service maps errors to
// status codes on its own.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codeflix/catalog/internal/platform/apperr"
	"github.com/codeflix/catalog/internal/platform/ctxutil"
	"github.com/codeflix/catalog/pkg/pagination"
)

// ListEnvelope is the JSON body for paginated list responses. The pagination
// metadata sits inline next to the items.
type ListEnvelope struct {
	Items interface{} `json:"items"`
	pagination.Meta
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with the projection as the body.
func OK(writer http.ResponseWriter, data interface{}) {
	JSON(writer, http.StatusOK, data)
}

// Created writes a 201 Created response with a Location header pointing at the
// canonical GET route for the new resource.
func Created(writer http.ResponseWriter, location string, data interface{}) {
	writer.Header().Set("Location", location)
	JSON(writer, http.StatusCreated, data)
}

// Paginated writes a 200 OK response with the page items and inline metadata.
func Paginated(writer http.ResponseWriter, data interface{}, metadata pagination.Meta) {
	JSON(writer, http.StatusOK, ListEnvelope{Items: data, Meta: metadata})
}

// NoContent writes a 204 No Content response.
func NoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// Error converts any Go error into the standardized problem-object response.
//
// [apperr.AppError] values pass through with their own type/title/status;
// anything else becomes a 500 whose cause is logged but never leaked.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.Status >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("type", appError.Type),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.Status, appError)
}
