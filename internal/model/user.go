package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are used internally by the repository layer; handlers define
// separate response types with appropriate JSON tags so that the
// password hash can never leak into a response by accident.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address, stored exactly as submitted
//                 (no case normalization; the unique index is the
//                 authority on duplicates).
//  Name         – display name, at least two characters.
//  PasswordHash – bcrypt hashed password.  Never logged, never
//                 serialized, never embedded in a token.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    Name         string    // users.name
    PasswordHash string    // users.password_hash
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}
