package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aroundtheus/around-api/internal/api/shared"
)

// testLogger returns a logger that discards output, keeping test runs quiet.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// strPtr builds a pointer for optional request fields.
func strPtr(s string) *string {
	return &s
}

// newJSONRequest builds a request with the payload marshalled as its JSON body.
func newJSONRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asAuthenticated attaches the given user ID to the request context the way
// the auth middleware does.
func asAuthenticated(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context so
// handlers can read it outside a running router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeErrorBody unmarshals the uniform {"message": ...} error envelope.
func decodeErrorBody(t *testing.T, recorder *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp
}
