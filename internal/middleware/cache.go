package middleware

import (
    "bytes"
    "context"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/todo-list-api/internal/config"
)

// TodoListCache caches the rendered GET /api/todos response per user in
// Redis.  The list endpoint is by far the hottest route of the service
// and its response depends only on the caller's own rows, so a per-user
// key is both correct and naturally isolated: a cache hit can never
// serve one user another user's list.  Writes to a user's list call
// Invalidate, so the TTL is only a backstop.
type TodoListCache struct {
    cfg config.CacheConfig
    rdb *redis.Client
}

// NewTodoListCache builds a cache helper.  A nil Redis client or a
// disabled config turns every method into a no-op.
func NewTodoListCache(cfg config.CacheConfig, rdb *redis.Client) *TodoListCache {
    return &TodoListCache{cfg: cfg, rdb: rdb}
}

func (tc *TodoListCache) enabled() bool { return tc != nil && tc.cfg.Enabled && tc.rdb != nil }

func (tc *TodoListCache) key(userID uint64) string {
    return fmt.Sprintf("%s:user:%d", tc.cfg.Prefix, userID)
}

// listWriter captures the response body while forwarding it to the
// client, so a freshly rendered list can be stored after the handler
// runs.
type listWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
}

func (lw *listWriter) WriteHeader(code int) { lw.status = code; lw.ResponseWriter.WriteHeader(code) }
func (lw *listWriter) Write(b []byte) (int, error) {
    lw.buf.Write(b)
    return lw.ResponseWriter.Write(b)
}

// Middleware serves the cached list when present and otherwise captures
// the handler's 200 response for the next request.  It must run after
// JWTAuth: the cache key is derived from the verified identity.  Any
// Redis failure falls through to the handler.
func (tc *TodoListCache) Middleware() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !tc.enabled() {
                return next(c)
            }
            ident := Identity(c)
            if ident == nil {
                return next(c)
            }

            ctx := c.Request().Context()
            if body, err := tc.rdb.Get(ctx, tc.key(ident.UserID)).Bytes(); err == nil {
                return c.JSONBlob(http.StatusOK, body)
            }

            lw := &listWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
            c.Response().Writer = lw
            if err := next(c); err != nil {
                return err
            }
            if lw.status == http.StatusOK && lw.buf.Len() > 0 {
                _ = tc.rdb.Set(ctx, tc.key(ident.UserID), lw.buf.Bytes(), tc.cfg.TTL).Err()
            }
            return nil
        }
    }
}

// Invalidate drops the cached list for a user.  Called by every todo
// mutation so the next read re-renders from the database.
func (tc *TodoListCache) Invalidate(ctx context.Context, userID uint64) {
    if !tc.enabled() {
        return
    }
    _ = tc.rdb.Del(ctx, tc.key(userID)).Err()
}
