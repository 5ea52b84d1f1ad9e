package handler

import (
    "context"      // provides context with cancellation for DB calls
    "database/sql" // sql.ErrNoRows distinguishes "no such user" from real failures
    "net/http"     // HTTP status codes and primitives
    "regexp"       // email shape validation
    "time"         // timeouts for DB calls and the token TTL
    "unicode/utf8" // length rules count characters, not bytes

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/todo-list-api/internal/config"     // app configuration
    "github.com/iliyamo/todo-list-api/internal/model"      // table-mirror structs
    "github.com/iliyamo/todo-list-api/internal/queue"      // activity event payloads
    "github.com/iliyamo/todo-list-api/internal/repository" // sentinel errors
    "github.com/iliyamo/todo-list-api/internal/service"    // activity publisher
    "github.com/iliyamo/todo-list-api/internal/utils"      // hashing and token issuing
)

// UserStore is the slice of the user repository the auth handlers need.
// Declared here so the handlers can be exercised against an in-memory
// store in tests; *repository.UserRepo is the production implementation.
type UserStore interface {
    Create(ctx context.Context, email, password, name string, cost int) (uint64, error)
    EmailExists(ctx context.Context, email string) (bool, error)
    GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
    Cfg   config.Config
    Users UserStore
}

func NewAuthHandler(cfg config.Config, u UserStore) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
    Name     string `json:"name"`
}
type loginReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

// userPart is the public projection of a user: id, email and name, never
// the password hash.
type userPart struct {
    ID    uint64 `json:"id"`
    Email string `json:"email"`
    Name  string `json:"name"`
}

// emailRe accepts local-part@domain with at least one dot in the domain.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register creates a new account.  Validation rules run in a fixed order
// and the first violated rule produces the response, so a request missing
// several fields still gets exactly one message naming the first problem.
func (h *AuthHandler) Register(c echo.Context) error {
    var req registerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email, password and name are required"})
    }
    if req.Email == "" || req.Password == "" || req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email, password and name are required"})
    }
    if !emailRe.MatchString(req.Email) {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email format"})
    }
    // Rune counts, not byte counts: "ééé" is three characters and must
    // fail the six-character password rule.
    if utf8.RuneCountInString(req.Password) < 6 {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Password must be at least 6 characters"})
    }
    if utf8.RuneCountInString(req.Name) < 2 {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Name must be at least 2 characters"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // Fast-path duplicate check: rejects an already-registered email
    // before paying for a bcrypt hash.  The unique index remains the
    // source of truth; a concurrent duplicate insert comes back from
    // Create as ErrEmailExists and maps to the same 409.
    taken, err := h.Users.EmailExists(ctx, req.Email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }
    if taken {
        return c.JSON(http.StatusConflict, echo.Map{"message": "This email is already in use"})
    }

    uid, err := h.Users.Create(ctx, req.Email, req.Password, req.Name, h.Cfg.BcryptCost)
    if err != nil {
        if err == repository.ErrEmailExists {
            return c.JSON(http.StatusConflict, echo.Map{"message": "This email is already in use"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }

    // Best effort: registration events feed the activity log and must
    // never fail or delay the response.
    go service.PublishActivity(context.Background(), queue.ActivityEvent{
        Type:   queue.ActivityUserRegistered,
        UserID: uid,
        Email:  req.Email,
        At:     time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, echo.Map{
        "message": "User created successfully",
        "user":    userPart{ID: uid, Email: req.Email, Name: req.Name},
    })
}

// Login verifies credentials and issues a signed bearer token.  A
// nonexistent email and a wrong password return the same generic body so
// the response cannot be used to probe which addresses are registered.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
    }
    if req.Email == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Incorrect email or password"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }
    if !utils.VerifyPassword(u.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Incorrect email or password"})
    }

    ttl := time.Duration(h.Cfg.TokenTTLHours) * time.Hour
    tok, err := utils.NewAuthToken(h.Cfg.JWTSecret, u.ID, u.Email, u.Name, ttl)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
    }

    return c.JSON(http.StatusOK, echo.Map{
        "message": "Login successful",
        "token":   tok.Token,
        "user":    userPart{ID: u.ID, Email: u.Email, Name: u.Name},
    })
}
