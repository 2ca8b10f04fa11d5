// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package page_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/langgate/internal/core/page"
)

type pageEnvelope struct {
	Data struct {
		Content struct {
			LanguageCode string `json:"language_code"`
		} `json:"content"`
		Modal *struct {
			Step        string `json:"step"`
			Value       string `json:"value"`
			ButtonLabel string `json:"button_label"`
			Disabled    bool   `json:"disabled"`
		} `json:"modal"`
		Banner *struct {
			Message string `json:"message"`
		} `json:"banner"`
	} `json:"data"`
	Error string `json:"error"`
	Code  string `json:"code"`
}

func do(t *testing.T, handler http.Handler, method, path, body string) (int, pageEnvelope) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var envelope pageEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope), recorder.Body.String())
	return recorder.Code, envelope
}

func TestHandler_FullSwitch(t *testing.T) {
	f, clk := newFlow(t, false)
	handler := page.NewHandler(f).Routes()

	status, body := do(t, handler, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "en", body.Data.Content.LanguageCode)
	assert.Nil(t, body.Data.Modal)

	status, body = do(t, handler, http.MethodPost, "/languages/es", "")
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, body.Data.Modal)
	assert.Equal(t, "awaiting_contact", body.Data.Modal.Step)

	status, body = do(t, handler, http.MethodPut, "/contact", `{"value":"5551234"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "5551234", body.Data.Modal.Value)

	status, body = do(t, handler, http.MethodPost, "/contact", "")
	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "Sending OTP...", body.Data.Modal.ButtonLabel)
	assert.True(t, body.Data.Modal.Disabled)

	clk.Advance(2 * time.Second)

	status, body = do(t, handler, http.MethodPut, "/otp", `{"value":"1234"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "awaiting_otp", body.Data.Modal.Step)

	status, body = do(t, handler, http.MethodPost, "/otp", "")
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, body.Data.Modal)
	assert.Equal(t, "es", body.Data.Content.LanguageCode)
	require.NotNil(t, body.Data.Banner)
	assert.Equal(t, "Language successfully changed to Español!", body.Data.Banner.Message)
}

func TestHandler_SubmitContactWithValue(t *testing.T) {
	f, _ := newFlow(t, false)
	handler := page.NewHandler(f).Routes()

	do(t, handler, http.MethodPost, "/languages/fr", "")
	status, body := do(t, handler, http.MethodPost, "/contact", `{"value":"a@b.com"}`)

	require.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "a@b.com", body.Data.Modal.Value)
}

func TestHandler_Errors(t *testing.T) {
	f, clk := newFlow(t, false)
	handler := page.NewHandler(f).Routes()

	status, body := do(t, handler, http.MethodPost, "/languages/xx", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)

	status, body = do(t, handler, http.MethodDelete, "/session", "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)

	do(t, handler, http.MethodPost, "/languages/en", "")

	status, body = do(t, handler, http.MethodPost, "/contact", `{"value":"   "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	status, body = do(t, handler, http.MethodPut, "/contact", `{"value":`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, handler, http.MethodPost, "/otp", `{"value":"1234"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body.Code)

	do(t, handler, http.MethodPost, "/contact", `{"value":"5551234"}`)
	clk.Advance(2 * time.Second)

	status, body = do(t, handler, http.MethodPost, "/otp", `{"value":"0000"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "INVALID_OTP", body.Code)
	assert.Equal(t, "Invalid OTP. Please try again.", body.Error)
}

func TestHandler_Dismiss(t *testing.T) {
	f, clk := newFlow(t, true)
	handler := page.NewHandler(f).Routes()

	do(t, handler, http.MethodPost, "/languages/hi", "")
	do(t, handler, http.MethodPost, "/contact", `{"value":"5551234"}`)

	status, body := do(t, handler, http.MethodDelete, "/session", "")
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, body.Data.Modal)
	assert.Equal(t, 0, clk.Pending())

	clk.Advance(10 * time.Second)
	assert.Equal(t, "en", f.Snapshot().ActiveLanguage)
}
