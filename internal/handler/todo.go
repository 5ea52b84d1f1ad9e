package handler

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/todo-list-api/internal/middleware"
    "github.com/iliyamo/todo-list-api/internal/model"
    "github.com/iliyamo/todo-list-api/internal/queue"
    "github.com/iliyamo/todo-list-api/internal/repository"
    "github.com/iliyamo/todo-list-api/internal/service"
)

// TodoStore is the slice of the todo repository the handlers need.  Every
// method takes the owning user's id; the store guarantees that no call
// can touch rows belonging to anyone else.  *repository.TodoRepo is the
// production implementation.
type TodoStore interface {
    ListByUser(ctx context.Context, userID uint64) ([]model.Todo, error)
    Create(ctx context.Context, userID uint64, text string, completed bool) (uint64, error)
    Update(ctx context.Context, userID, todoID uint64, text string, completed bool) error
    Delete(ctx context.Context, userID, todoID uint64) error
}

// TodoHandler serves the per-user CRUD endpoints.  All of them sit behind
// the JWT guard, so the identity read from the context is always the
// verified claim set of the caller.  Cache may be nil when Redis is not
// configured.
type TodoHandler struct {
    Todos TodoStore
    Cache *middleware.TodoListCache
}

func NewTodoHandler(t TodoStore, cache *middleware.TodoListCache) *TodoHandler {
    return &TodoHandler{Todos: t, Cache: cache}
}

// ----- DTOs -----

type createTodoReq struct {
    Text      string `json:"text"`
    Completed bool   `json:"completed"`
}

// updateTodoReq uses a pointer for Completed so that "field absent" can
// be told apart from an explicit false; both text and completed are
// required on update.
type updateTodoReq struct {
    Text      string `json:"text"`
    Completed *bool  `json:"completed"`
}

type todoPart struct {
    ID        uint64    `json:"id"`
    Text      string    `json:"text"`
    Completed bool      `json:"completed"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

// List returns the caller's todos, newest first.  An account with no
// todos yet gets an empty array, not null.
func (h *TodoHandler) List(c echo.Context) error {
    ident := middleware.Identity(c)
    if ident == nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    todos, err := h.Todos.ListByUser(ctx, ident.UserID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }

    data := make([]todoPart, 0, len(todos))
    for _, t := range todos {
        data = append(data, todoPart{
            ID: t.ID, Text: t.Text, Completed: t.Completed,
            CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Todo list", "data": data})
}

// Create inserts a new todo owned by the caller.  completed defaults to
// false when omitted.
func (h *TodoHandler) Create(c echo.Context) error {
    ident := middleware.Identity(c)
    if ident == nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }

    var req createTodoReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "The \"text\" field is required"})
    }
    if req.Text == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "The \"text\" field is required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    id, err := h.Todos.Create(ctx, ident.UserID, req.Text, req.Completed)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }
    h.Cache.Invalidate(ctx, ident.UserID)

    return c.JSON(http.StatusCreated, echo.Map{
        "message": "Todo created successfully",
        "data": echo.Map{
            "id":        id,
            "text":      req.Text,
            "completed": req.Completed,
            "user_id":   ident.UserID,
        },
    })
}

// Update rewrites a todo's text and completed flag, but only when the
// todo belongs to the caller.  A todo that does not exist and a todo
// owned by someone else produce the same 404.
func (h *TodoHandler) Update(c echo.Context) error {
    ident := middleware.Identity(c)
    if ident == nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }

    var req updateTodoReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "The \"text\" field is required"})
    }
    if req.Text == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "The \"text\" field is required"})
    }
    if req.Completed == nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "The \"completed\" field is required"})
    }

    todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"message": "Todo not found or not yours"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Todos.Update(ctx, ident.UserID, todoID, req.Text, *req.Completed); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"message": "Todo not found or not yours"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }
    h.Cache.Invalidate(ctx, ident.UserID)

    if *req.Completed {
        // Completions feed the activity log; never block the response.
        go service.PublishActivity(context.Background(), queue.ActivityEvent{
            Type:   queue.ActivityTodoCompleted,
            UserID: ident.UserID,
            Email:  ident.Email,
            TodoID: todoID,
            Text:   req.Text,
            At:     time.Now().UTC().Format(time.RFC3339),
        })
    }

    return c.JSON(http.StatusOK, echo.Map{
        "message": "Todo updated successfully",
        "data": echo.Map{
            "id":        todoID,
            "text":      req.Text,
            "completed": *req.Completed,
        },
    })
}

// Delete removes a todo owned by the caller; 404 otherwise.
func (h *TodoHandler) Delete(c echo.Context) error {
    ident := middleware.Identity(c)
    if ident == nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }

    todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"message": "Todo not found or not yours"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Todos.Delete(ctx, ident.UserID, todoID); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"message": "Todo not found or not yours"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }
    h.Cache.Invalidate(ctx, ident.UserID)

    return c.JSON(http.StatusOK, echo.Map{"message": "Todo deleted successfully"})
}
