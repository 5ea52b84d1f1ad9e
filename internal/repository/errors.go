// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific error strings. ErrEmailExists signals a
// duplicate registration, ErrNotFound signals that a row either does
// not exist or is not owned by the caller — the two cases are
// deliberately indistinguishable so that handlers cannot leak the
// existence of another user's data.
package repository

import "errors"

// ErrEmailExists is returned when an insert into users collides with the
// unique email index. Handlers should translate this into an HTTP 409
// response.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when an owner-scoped update or delete affected
// no rows: the todo does not exist, or it belongs to someone else.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
