package main // Entry point package

import (
	"log"      // Logging library
	"net/http" // Status codes for the error handler

	"github.com/joho/godotenv"    // .env loading, mirrors local dev workflow
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/todo-list-api/internal/config"
	"github.com/iliyamo/todo-list-api/internal/database"
	"github.com/iliyamo/todo-list-api/internal/handler"
	"github.com/iliyamo/todo-list-api/internal/middleware"
	"github.com/iliyamo/todo-list-api/internal/queue"
	"github.com/iliyamo/todo-list-api/internal/repository"
	"github.com/iliyamo/todo-list-api/internal/router"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and caching disabled")
	}

	users := repository.NewUserRepo(db)
	todos := repository.NewTodoRepo(db)

	cache := middleware.NewTodoListCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	authH := handler.NewAuthHandler(cfg, users)
	todoH := handler.NewTodoHandler(todos, cache)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover()) // a panicking handler becomes a 500, not a dead process
	e.Use(echomw.CORS())    // frontend runs on another origin

	// Every error surfaced to a client is a {message} JSON body: unknown
	// routes get a 404, anything unexpected is logged server-side and
	// collapsed into a generic 500 so internals never leak.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := "Server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if code == http.StatusNotFound {
				msg = "Route not found"
			} else if s, ok := he.Message.(string); ok {
				msg = s
			}
		}
		if code >= http.StatusInternalServerError {
			c.Logger().Error(err)
		}
		if !c.Response().Committed {
			_ = c.JSON(code, echo.Map{"message": msg})
		}
	}

	router.RegisterRoutes(e)                      // / and /healthz
	router.RegisterAuth(e, authH, limiter)        // /api/auth/*
	router.RegisterTodos(e, todoH, cfg.JWTSecret) // /api/todos/*

	// Activity consumer runs for the life of the process; it is a no-op
	// when no broker is configured.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
