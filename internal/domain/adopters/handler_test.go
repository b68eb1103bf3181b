package adopters_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shelter-api/internal/adapters/storage/memory"
	"shelter-api/internal/domain/adopters"
	"shelter-api/internal/errs"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *adopters.Service) {
	t.Helper()

	svc := adopters.NewService(memory.NewAdopterRepo(memory.NewStore()))
	r := chi.NewRouter()
	adopters.RegisterRoutes(r, svc)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, svc
}

func call(t *testing.T, ts *httptest.Server, method, path, body string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(res.Body)

	var out map[string]any
	if buf.Len() > 0 && buf.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	}
	return res.StatusCode, out
}

func TestHandler_CreateAndGet(t *testing.T) {
	ts, _ := newTestServer(t)

	st, body := call(t, ts, http.MethodPost, "/adopters", `{"name":"Jane","email":"jane@example.com"}`)
	require.Equal(t, http.StatusCreated, st)
	assert.Equal(t, "Jane", body["name"])
	assert.Equal(t, "jane@example.com", body["email"])

	st, body = call(t, ts, http.MethodGet, "/adopters/1", "")
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, float64(1), body["id"])
}

func TestHandler_CreateWithoutNameIsBadRequest(t *testing.T) {
	ts, _ := newTestServer(t)

	st, body := call(t, ts, http.MethodPost, "/adopters", `{"email":"x@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, st)
	assert.Contains(t, body["message"], "NOT NULL")
}

func TestHandler_RejectsBadBodies(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"name":`},
		{"unknown field", `{"name":"Jane","role":"admin"}`},
		{"non string name", `{"name":42}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, body := call(t, ts, http.MethodPost, "/adopters", tt.body)
			assert.Equal(t, http.StatusBadRequest, st)
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestHandler_ListWithFilters(t *testing.T) {
	ts, svc := newTestServer(t)
	ctx := context.Background()

	for _, n := range []string{"Jane", "John", "Jane"} {
		name := n
		_, err := svc.Create(ctx, adopters.NewAdopter{Name: &name})
		require.NoError(t, err)
	}

	res, err := http.Get(ts.URL + "/adopters?name=Jane")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, float64(1), list[0]["id"])
	assert.Equal(t, float64(3), list[1]["id"])

	st, body := call(t, ts, http.MethodGet, "/adopters?drop_table=1", "")
	assert.Equal(t, http.StatusBadRequest, st)
	assert.Contains(t, body["message"], "unknown filter column")
}

func TestHandler_PatchIsSparse(t *testing.T) {
	ts, svc := newTestServer(t)

	name, email := "Jane", "jane@example.com"
	a, err := svc.Create(context.Background(), adopters.NewAdopter{Name: &name, Email: &email})
	require.NoError(t, err)

	st, body := call(t, ts, http.MethodPatch, "/adopters/1", `{"email":null}`)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, "Jane", body["name"])
	assert.Nil(t, body["email"])

	st, body = call(t, ts, http.MethodPut, "/adopters/1", `{}`)
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, float64(a.ID), body["id"])

	st, _ = call(t, ts, http.MethodPatch, "/adopters/1", `{"name":null}`)
	assert.Equal(t, http.StatusBadRequest, st)

	st, body = call(t, ts, http.MethodPatch, "/adopters/99", `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, st)
	assert.Equal(t, "not found", body["message"])
}

func TestHandler_Delete(t *testing.T) {
	ts, svc := newTestServer(t)

	name := "Jane"
	_, err := svc.Create(context.Background(), adopters.NewAdopter{Name: &name})
	require.NoError(t, err)

	st, body := call(t, ts, http.MethodDelete, "/adopters/1", "")
	require.Equal(t, http.StatusOK, st)
	assert.Equal(t, "destroyed", body["message"])

	st, _ = call(t, ts, http.MethodDelete, "/adopters/1", "")
	assert.Equal(t, http.StatusNotFound, st)

	_, err = svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestHandler_InvalidID(t *testing.T) {
	ts, _ := newTestServer(t)

	st, body := call(t, ts, http.MethodGet, "/adopters/abc", "")
	assert.Equal(t, http.StatusBadRequest, st)
	assert.Equal(t, "invalid adopter id", body["message"])
}
