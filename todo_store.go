package taskhub

import (
	"slices"
	"sync"
	"time"

	"github.com/nols-dev/taskhub/internal"
)

// TodoStore owns the todo collection. One mutex covers the whole slice;
// insertion order is preserved and List/Delete return copies, so callers
// never see the backing array.
type TodoStore struct {
	mu    sync.Mutex
	todos []Todo
}

// NewTodoStore returns an empty store.
func NewTodoStore() *TodoStore {
	return &TodoStore{}
}

// Create appends a new todo and returns it. The title is stored as given,
// empty included; CreatedAt and UpdatedAt start equal.
func (s *TodoStore) Create(title string, completed bool) Todo {
	now := time.Now().UTC()
	todo := Todo{
		ID:        internal.NewID(),
		Title:     title,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.todos = append(s.todos, todo)
	s.mu.Unlock()

	return todo
}

// List returns a snapshot of the collection in insertion order.
func (s *TodoStore) List() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.todos)
}

// Update applies the non-nil fields of patch to the todo with the given id
// and stamps UpdatedAt. It returns the updated todo, or [ErrTodoNotFound]
// without touching anything.
func (s *TodoStore) Update(id string, patch TodoPatch) (Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.todos[i].Title = *patch.Title
		}
		if patch.Completed != nil {
			s.todos[i].Completed = *patch.Completed
		}
		s.todos[i].UpdatedAt = time.Now().UTC()
		return s.todos[i], nil
	}

	return Todo{}, ErrTodoNotFound
}

// Delete removes the todo with the given id and returns a snapshot of what
// remains. When nothing matched it returns [ErrTodoNotFound] and the
// collection is unchanged.
func (s *TodoStore) Delete(id string) ([]Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.todos)
	s.todos = slices.DeleteFunc(s.todos, func(t Todo) bool {
		return t.ID == id
	})
	if len(s.todos) == before {
		return nil, ErrTodoNotFound
	}

	return slices.Clone(s.todos), nil
}
