package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/todo-list-api/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/todo-list-api/internal/middleware" // import middleware for JWT authentication, rate limiting and caching
)

// RegisterRoutes registers the routes that do not require authentication:
// the root welcome payload and the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the register and login endpoints under
// /api/auth.  Neither requires a token; both sit behind the rate
// limiter, which is a pass-through when Redis is not configured.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	if limiter != nil {
		g.Use(limiter)
	}
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterTodos registers the todo CRUD endpoints under /api/todos.  The
// JWT guard runs first on every route in the group: no todo handler is
// reachable without a verified identity in the request context.  The
// list cache only wraps the GET route.
func RegisterTodos(e *echo.Echo, t *handler.TodoHandler, jwtSecret string) {
	g := e.Group("/api/todos")
	g.Use(middleware.JWTAuth(jwtSecret))
	if t.Cache != nil {
		g.GET("", t.List, t.Cache.Middleware())
	} else {
		g.GET("", t.List)
	}
	g.POST("", t.Create)
	g.PUT("/:id", t.Update)
	g.DELETE("/:id", t.Delete)
}
