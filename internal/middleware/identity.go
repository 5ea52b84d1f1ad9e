package middleware

// identity.go defines the accessor through which handlers read the
// authenticated identity that JWTAuth stored in the request context.
// Keeping the lookup in one place means the context key and the claim
// type are an implementation detail of this package.

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/todo-list-api/internal/utils"
)

// Identity returns the verified claims attached to the request, or nil
// when the request never passed through JWTAuth.  Handlers registered
// behind the guard can rely on a non-nil result; a nil result on a
// guarded route indicates a routing bug, so callers treat it as an
// internal error rather than falling back to some default user.
func Identity(c echo.Context) *utils.Claims {
    if v, ok := c.Get(identityKey).(*utils.Claims); ok {
        return v
    }
    return nil
}
