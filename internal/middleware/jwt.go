package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "errors"   // errors.Is distinguishes the expiry failure for the response message
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for splitting the Authorization header

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/todo-list-api/internal/utils"
)

// identityKey is the context key under which the verified claim set is
// stored for the duration of one request.  It is deliberately unexported;
// handlers read the identity through Identity() rather than touching the
// key directly.
const identityKey = "identity"

// JWTAuth returns an Echo middleware that guards every per-user route.
// A request moves through three states: no token, token present, and
// verified or rejected.  The two rejection outcomes use different status
// codes on purpose — 401 tells the client "you are not logged in", 403
// tells it "your session is invalid or expired, log in again" — so a
// frontend can distinguish the two without parsing messages.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // The header must be exactly the two-token scheme
            // "Bearer <token>".  A missing header, a different scheme,
            // or a bare "Bearer" with no token all count as "no
            // credential supplied" and yield 401.
            auth := c.Request().Header.Get("Authorization")
            parts := strings.Fields(auth)
            if len(parts) != 2 || parts[0] != "Bearer" {
                return c.JSON(http.StatusUnauthorized, echo.Map{
                    "message": "Missing token. You must be logged in.",
                })
            }

            // A token string is present; verify signature then expiry.
            // Any failure is a 403: the client presented a credential
            // and it was refused.
            claims, err := utils.VerifyAuthToken(secret, parts[1])
            if err != nil {
                msg := "Invalid token. Please log in again."
                if errors.Is(err, utils.ErrTokenExpired) {
                    msg = "Token expired. Please log in again."
                }
                return c.JSON(http.StatusForbidden, echo.Map{"message": msg})
            }

            // Verified: attach the typed identity to the request context
            // and hand over to the downstream handler.  The claims are
            // never persisted; they live exactly as long as the request.
            c.Set(identityKey, claims)
            return next(c)
        }
    }
}
