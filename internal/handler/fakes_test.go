package handler_test

// In-memory implementations of the handler store interfaces.  They mirror
// the contracts of the SQL repositories closely enough for handler tests:
// sql.ErrNoRows for a missing user, repository sentinels for duplicate
// emails and owner-scoped misses, newest-first ordering for lists.

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/todo-list-api/internal/model"
	"github.com/iliyamo/todo-list-api/internal/repository"
	"github.com/iliyamo/todo-list-api/internal/utils"
)

type memUserStore struct {
	mu      sync.Mutex
	nextID  uint64
	byEmail map[string]model.User

	// raceConflict makes EmailExists report false while Create still
	// collides, simulating a concurrent registration winning the insert
	// race between the fast-path check and the INSERT.
	raceConflict bool
	// failAll makes every method return a storage error.
	failAll bool
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: map[string]model.User{}}
}

var errStorage = sql.ErrConnDone

func (s *memUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return false, errStorage
	}
	if s.raceConflict {
		return false, nil
	}
	_, ok := s.byEmail[email]
	return ok, nil
}

func (s *memUserStore) Create(_ context.Context, email, password, name string, cost int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return 0, errStorage
	}
	if _, ok := s.byEmail[email]; ok || s.raceConflict {
		return 0, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.nextID++
	now := time.Now().UTC()
	s.byEmail[email] = model.User{
		ID: s.nextID, Email: email, Name: name, PasswordHash: hash,
		CreatedAt: now, UpdatedAt: now,
	}
	return s.nextID, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return model.User{}, errStorage
	}
	u, ok := s.byEmail[email]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

type memTodoStore struct {
	mu     sync.Mutex
	nextID uint64
	todos  map[uint64]model.Todo
	clock  time.Time
}

func newMemTodoStore() *memTodoStore {
	return &memTodoStore{todos: map[uint64]model.Todo{}, clock: time.Now().UTC()}
}

func (s *memTodoStore) ListByUser(_ context.Context, userID uint64) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Todo{}
	for _, t := range s.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memTodoStore) Create(_ context.Context, userID uint64, text string, completed bool) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.clock = s.clock.Add(time.Second) // distinct creation times for ordering
	s.todos[s.nextID] = model.Todo{
		ID: s.nextID, Text: text, Completed: completed, UserID: userID,
		CreatedAt: s.clock, UpdatedAt: s.clock,
	}
	return s.nextID, nil
}

func (s *memTodoStore) Update(_ context.Context, userID, todoID uint64, text string, completed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todos[todoID]
	if !ok || t.UserID != userID {
		return repository.ErrNotFound
	}
	t.Text = text
	t.Completed = completed
	t.UpdatedAt = time.Now().UTC()
	s.todos[todoID] = t
	return nil
}

func (s *memTodoStore) Delete(_ context.Context, userID, todoID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todos[todoID]
	if !ok || t.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.todos, todoID)
	return nil
}
