package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/todo-list-api/internal/handler"
	"github.com/iliyamo/todo-list-api/internal/router"
	"github.com/iliyamo/todo-list-api/internal/utils"
)

const todoSecret = "todo-test-secret"

// newTodoServer wires the todo handlers behind the real JWT guard, the
// way main does, so every test request travels the full route.
func newTodoServer(t *testing.T) (*echo.Echo, *memTodoStore) {
	t.Helper()
	e := echo.New()
	store := newMemTodoStore()
	router.RegisterTodos(e, handler.NewTodoHandler(store, nil), todoSecret)
	return e, store
}

func tokenFor(t *testing.T, userID uint64, email, name string) string {
	t.Helper()
	tok, err := utils.NewAuthToken(todoSecret, userID, email, name, time.Hour)
	require.NoError(t, err)
	return tok.Token
}

func doReq(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTodos_RequireToken(t *testing.T) {
	e, _ := newTodoServer(t)

	rec := doReq(e, http.MethodGet, "/api/todos", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doReq(e, http.MethodGet, "/api/todos", "garbage-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTodos_EmptyListIsArray(t *testing.T) {
	e, _ := newTodoServer(t)
	token := tokenFor(t, 1, "a@x.com", "Ann")

	rec := doReq(e, http.MethodGet, "/api/todos", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	// data must be [] and never null for a fresh account.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestTodos_CreateDefaultsAndValidation(t *testing.T) {
	e, _ := newTodoServer(t)
	token := tokenFor(t, 1, "a@x.com", "Ann")

	rec := doReq(e, http.MethodPost, "/api/todos", token, `{"text":"buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data struct {
			ID        uint64 `json:"id"`
			Text      string `json:"text"`
			Completed bool   `json:"completed"`
			UserID    uint64 `json:"user_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "buy milk", body.Data.Text)
	assert.False(t, body.Data.Completed) // defaults to false when omitted
	assert.Equal(t, uint64(1), body.Data.UserID)

	rec = doReq(e, http.MethodPost, "/api/todos", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTodos_ListNewestFirst(t *testing.T) {
	e, _ := newTodoServer(t)
	token := tokenFor(t, 1, "a@x.com", "Ann")

	for _, text := range []string{"first", "second", "third"} {
		rec := doReq(e, http.MethodPost, "/api/todos", token, fmt.Sprintf(`{"text":%q}`, text))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doReq(e, http.MethodGet, "/api/todos", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Text string `json:"text"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "third", body.Data[0].Text)
	assert.Equal(t, "second", body.Data[1].Text)
	assert.Equal(t, "first", body.Data[2].Text)
}

func TestTodos_UpdateValidation(t *testing.T) {
	e, _ := newTodoServer(t)
	token := tokenFor(t, 1, "a@x.com", "Ann")

	rec := doReq(e, http.MethodPost, "/api/todos", token, `{"text":"buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// text missing
	rec = doReq(e, http.MethodPut, "/api/todos/1", token, `{"completed":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// completed missing: explicitly required, false is not assumed
	rec = doReq(e, http.MethodPut, "/api/todos/1", token, `{"text":"buy milk"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// completed false is a valid value, not a missing field
	rec = doReq(e, http.MethodPut, "/api/todos/1", token, `{"text":"buy oat milk","completed":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTodos_UpdateAndDelete(t *testing.T) {
	e, _ := newTodoServer(t)
	token := tokenFor(t, 1, "a@x.com", "Ann")

	rec := doReq(e, http.MethodPost, "/api/todos", token, `{"text":"buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doReq(e, http.MethodPut, "/api/todos/1", token, `{"text":"buy milk","completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"completed":true`)

	rec = doReq(e, http.MethodDelete, "/api/todos/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Gone now.
	rec = doReq(e, http.MethodDelete, "/api/todos/1", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTodos_OwnershipIsolation(t *testing.T) {
	e, store := newTodoServer(t)
	annToken := tokenFor(t, 1, "a@x.com", "Ann")
	bobToken := tokenFor(t, 2, "b@y.org", "Bob")

	// Each user creates one todo.
	rec := doReq(e, http.MethodPost, "/api/todos", annToken, `{"text":"ann's"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doReq(e, http.MethodPost, "/api/todos", bobToken, `{"text":"bob's"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Ann sees only her own list; Bob's item never appears.
	rec = doReq(e, http.MethodGet, "/api/todos", annToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ann's")
	assert.NotContains(t, rec.Body.String(), "bob's")

	// Ann cannot update or delete Bob's todo (id 2): 404, not Bob's data
	// and not a success.
	rec = doReq(e, http.MethodPut, "/api/todos/2", annToken, `{"text":"hijacked","completed":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bob's")

	rec = doReq(e, http.MethodDelete, "/api/todos/2", annToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Bob's todo is untouched.
	todos, err := store.ListByUser(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "bob's", todos[0].Text)
	assert.False(t, todos[0].Completed)
}

func TestTodos_UnknownIDFormats(t *testing.T) {
	e, _ := newTodoServer(t)
	token := tokenFor(t, 1, "a@x.com", "Ann")

	// A non-numeric or unknown id is the same 404 as a foreign one.
	rec := doReq(e, http.MethodPut, "/api/todos/abc", token, `{"text":"x","completed":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doReq(e, http.MethodDelete, "/api/todos/9999", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
