package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/todo-list-api/internal/model"
)

// TodoRepo provides CRUD operations for todo items.  Every method takes
// the owning user's id and bakes it into the WHERE clause, so ownership
// scoping is enforced at the query level rather than being left to the
// handlers.  An update or delete that matches no row — whether because
// the todo does not exist or because it belongs to another user —
// reports ErrNotFound; the two cases are indistinguishable on purpose.
type TodoRepo struct {
    db *sql.DB
}

// NewTodoRepo returns a new TodoRepo bound to the given database.
func NewTodoRepo(db *sql.DB) *TodoRepo { return &TodoRepo{db: db} }

// ListByUser returns all todos owned by userID, newest first.
func (r *TodoRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Todo, error) {
    const q = `SELECT id, text, completed, user_id, created_at, updated_at
               FROM todos WHERE user_id = ? ORDER BY created_at DESC, id DESC`
    rows, err := r.db.QueryContext(ctx, q, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    // Start from an empty non-nil slice so an empty list serializes as
    // [] rather than null.
    todos := []model.Todo{}
    for rows.Next() {
        var t model.Todo
        if err := rows.Scan(&t.ID, &t.Text, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
            return nil, err
        }
        todos = append(todos, t)
    }
    return todos, rows.Err()
}

// Create inserts a todo for userID and returns its generated id.
func (r *TodoRepo) Create(ctx context.Context, userID uint64, text string, completed bool) (uint64, error) {
    const q = `INSERT INTO todos (text, completed, user_id) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, text, completed, userID)
    if err != nil {
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// Update rewrites text and completed on a todo, but only when it is owned
// by userID.  Zero affected rows maps to ErrNotFound.
func (r *TodoRepo) Update(ctx context.Context, userID, todoID uint64, text string, completed bool) error {
    const q = `UPDATE todos SET text = ?, completed = ? WHERE id = ? AND user_id = ?`
    res, err := r.db.ExecContext(ctx, q, text, completed, todoID, userID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrNotFound
    }
    return nil
}

// Delete removes a todo owned by userID.  Zero affected rows maps to
// ErrNotFound.
func (r *TodoRepo) Delete(ctx context.Context, userID, todoID uint64) error {
    const q = `DELETE FROM todos WHERE id = ? AND user_id = ?`
    res, err := r.db.ExecContext(ctx, q, todoID, userID)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrNotFound
    }
    return nil
}
