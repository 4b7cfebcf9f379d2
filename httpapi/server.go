package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/nols-dev/taskhub"
	"github.com/nols-dev/taskhub/jwt"
)

// Server holds the handler dependencies. Construct with [New], then mount
// the router from [Server.Handler].
type Server struct {
	todos    *taskhub.TodoStore
	accounts *taskhub.Accounts
	tokens   *jwt.Manager
	metrics  *taskhub.Metrics
	log      *slog.Logger
}

// New wires a Server. metrics may be nil; logger falls back to
// [slog.Default] when nil.
func New(todos *taskhub.TodoStore, accounts *taskhub.Accounts, tokens *jwt.Manager, metrics *taskhub.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		todos:    todos,
		accounts: accounts,
		tokens:   tokens,
		metrics:  metrics,
		log:      logger,
	}
}

// Handler builds the full middleware stack: router, CORS for the given
// origins, request logging outermost.
func (s *Server) Handler(corsOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/add/todo", s.createTodo).Methods(http.MethodPost)
	r.HandleFunc("/todos", s.listTodos).Methods(http.MethodGet)
	r.HandleFunc("/todo/{id}", s.updateTodo).Methods(http.MethodPut)
	r.HandleFunc("/todo/{id}", s.deleteTodo).Methods(http.MethodDelete)

	r.HandleFunc("/create/user", s.register).Methods(http.MethodPost)
	r.HandleFunc("/login", s.login).Methods(http.MethodPost)

	r.HandleFunc("/metrics", s.metricsSnapshot).Methods(http.MethodGet)

	authed := r.NewRoute().Subrouter()
	authed.Use(s.requireAuth)
	authed.HandleFunc("/update/user/{id}", s.updateUserInfo).Methods(http.MethodPut)
	authed.HandleFunc("/update/user/{id}/changepassword", s.changePassword).Methods(http.MethodPut)

	c := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           3600,
	})

	return s.logRequests(c.Handler(r))
}

func (s *Server) metricsSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}
