package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nols-dev/taskhub"
)

type createTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// todoCreatedResponse is the creation projection: UpdatedAt is omitted
// because it equals CreatedAt by construction.
type todoCreatedResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Server) createTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	todo := s.todos.Create(req.Title, req.Completed)
	s.metrics.Inc(taskhub.MetricTodoCreated)

	writeJSON(w, http.StatusCreated, todoCreatedResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
	})
}

func (s *Server) listTodos(w http.ResponseWriter, r *http.Request) {
	todos := s.todos.List()
	if todos == nil {
		todos = []taskhub.Todo{}
	}
	writeJSON(w, http.StatusOK, todos)
}

func (s *Server) updateTodo(w http.ResponseWriter, r *http.Request) {
	var patch taskhub.TodoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	todo, err := s.todos.Update(mux.Vars(r)["id"], patch)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.metrics.Inc(taskhub.MetricTodoUpdated)

	writeJSON(w, http.StatusOK, todo)
}

func (s *Server) deleteTodo(w http.ResponseWriter, r *http.Request) {
	remaining, err := s.todos.Delete(mux.Vars(r)["id"])
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	s.metrics.Inc(taskhub.MetricTodoDeleted)

	if remaining == nil {
		remaining = []taskhub.Todo{}
	}
	writeJSON(w, http.StatusOK, remaining)
}
