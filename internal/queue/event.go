// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// Activity event types published on the todo.activity queue.
const (
    ActivityUserRegistered = "user.registered"
    ActivityTodoCompleted  = "todo.completed"
)

// ActivityEvent describes a notable user action.  It carries enough
// information for downstream consumers to log or notify without querying
// the primary database.  TodoID and Text are zero/empty for events that
// do not concern a todo.  The password hash is never part of any event.
type ActivityEvent struct {
    Type   string `json:"type"`
    UserID uint64 `json:"user_id"`
    Email  string `json:"email"`
    TodoID uint64 `json:"todo_id,omitempty"`
    Text   string `json:"text,omitempty"`
    At     string `json:"at"`
}
