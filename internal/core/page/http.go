// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package page

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/langgate/internal/core/flow"
	requestutil "github.com/taibuivan/langgate/internal/platform/request"
	"github.com/taibuivan/langgate/internal/platform/respond"
	"github.com/taibuivan/langgate/pkg/pointer"
)

// inputRequest carries an optional input value.
type inputRequest struct {
	Value *string `json:"value"`
}

// Handler exposes a single flow over HTTP. Every successful call answers with
// the freshly rendered page.
type Handler struct {
	flow *flow.Flow
}

func NewHandler(f *flow.Flow) *Handler {
	return &Handler{flow: f}
}

// Routes returns the /flow sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getPage)
	router.Post("/languages/{code}", handler.selectLanguage)

	router.Put("/contact", handler.setContact)
	router.Post("/contact", handler.submitContact)

	router.Put("/otp", handler.setOTP)
	router.Post("/otp", handler.submitOTP)

	router.Delete("/session", handler.dismiss)

	return router
}

func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, Render(handler.flow.Snapshot()))
}

func (handler *Handler) selectLanguage(writer http.ResponseWriter, request *http.Request) {
	code := requestutil.Param(request, "code")

	if err := handler.flow.SelectLanguage(request.Context(), code); err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.render(writer)
}

func (handler *Handler) setContact(writer http.ResponseWriter, request *http.Request) {
	var input inputRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.flow.SetContact(request.Context(), pointer.Or(input.Value, "")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.render(writer)
}

func (handler *Handler) submitContact(writer http.ResponseWriter, request *http.Request) {
	var input inputRequest
	if err := requestutil.DecodeOptionalJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ctx := request.Context()
	if input.Value != nil {
		if err := handler.flow.SetContact(ctx, *input.Value); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	if err := handler.flow.SubmitContact(ctx); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The OTP step is reached asynchronously.
	respond.Accepted(writer, Render(handler.flow.Snapshot()))
}

func (handler *Handler) setOTP(writer http.ResponseWriter, request *http.Request) {
	var input inputRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.flow.SetOTP(request.Context(), pointer.Or(input.Value, "")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.render(writer)
}

func (handler *Handler) submitOTP(writer http.ResponseWriter, request *http.Request) {
	var input inputRequest
	if err := requestutil.DecodeOptionalJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	submit := handler.flow.SubmitCurrentOTP
	if input.Value != nil {
		code := *input.Value
		submit = func(ctx context.Context) error { return handler.flow.SubmitOTP(ctx, code) }
	}

	if err := submit(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.render(writer)
}

func (handler *Handler) dismiss(writer http.ResponseWriter, request *http.Request) {
	if err := handler.flow.Dismiss(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}
	handler.render(writer)
}

func (handler *Handler) render(writer http.ResponseWriter) {
	respond.OK(writer, Render(handler.flow.Snapshot()))
}
