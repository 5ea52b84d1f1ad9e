package model

import "time"

// Todo represents a row in the `todos` table.  Every todo belongs to
// exactly one user via UserID and every query in the repository layer is
// scoped by that column, so a todo can never be read or mutated through
// another user's session.
//
// Fields:
//  ID        – primary key identifier of the todo.
//  Text      – the task description (non-empty).
//  Completed – whether the task is done.
//  UserID    – owner of the todo (references users.id).
//  CreatedAt – timestamp of creation; list responses are ordered by this
//              column, newest first.
//  UpdatedAt – timestamp of last update.
type Todo struct {
    ID        uint64    // todos.id
    Text      string    // todos.text
    Completed bool      // todos.completed
    UserID    uint64    // todos.user_id
    CreatedAt time.Time // todos.created_at
    UpdatedAt time.Time // todos.updated_at
}
