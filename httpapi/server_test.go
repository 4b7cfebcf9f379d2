package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nols-dev/taskhub"
	"github.com/nols-dev/taskhub/jwt"
	"github.com/nols-dev/taskhub/password"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	hasher, err := password.NewArgon2(password.Config{
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	if err != nil {
		t.Fatalf("NewArgon2 error: %v", err)
	}

	tokens, err := jwt.NewManager(jwt.Config{
		Secret:    []byte("test-secret"),
		AccessTTL: time.Hour,
		Issuer:    "taskhub-test",
	})
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}

	metrics := taskhub.NewMetrics()
	accounts := taskhub.NewAccounts(taskhub.NewUserStore(), hasher, nil, metrics)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := New(taskhub.NewTodoStore(), accounts, tokens, metrics, logger)
	return srv.Handler([]string{"http://localhost:3000"})
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func registerUser(t *testing.T, h http.Handler, email string) (id, token string) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/create/user", "", map[string]string{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            email,
		"password":         "abcdef",
		"confirm_password": "abcdef",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	return body["id"].(string), body["token"].(string)
}

func TestTodoLifecycle(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/add/todo", "", map[string]any{
		"title":     "Buy milk",
		"completed": false,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)
	if created["title"] != "Buy milk" {
		t.Fatalf("unexpected create body %v", created)
	}
	if _, ok := created["updated_at"]; ok {
		t.Fatal("creation projection should not carry updated_at")
	}
	id := created["id"].(string)

	rec = doJSON(t, h, http.MethodGet, "/todos", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var todos []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &todos); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}

	rec = doJSON(t, h, http.MethodPut, "/todo/"+id, "", map[string]any{"completed": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}
	updated := decodeBody(t, rec)
	if updated["title"] != "Buy milk" || updated["completed"] != true {
		t.Fatalf("unexpected update body %v", updated)
	}

	rec = doJSON(t, h, http.MethodDelete, "/todo/"+id, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty remaining list, got %q", body)
	}

	rec = doJSON(t, h, http.MethodDelete, "/todo/"+id, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestTodoUpdateNotFound(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPut, "/todo/missing", "", map[string]any{"completed": true})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRegisterValidationAndConflict(t *testing.T) {
	h := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/create/user", "", map[string]string{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "not-an-email",
		"password":         "abcdef",
		"confirm_password": "abcdef",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad email status = %d, want 400", rec.Code)
	}

	registerUser(t, h, "ada@example.com")

	rec = doJSON(t, h, http.MethodPost, "/create/user", "", map[string]string{
		"first_name":       "Eve",
		"last_name":        "Intruder",
		"email":            "ada@example.com",
		"password":         "abcdef",
		"confirm_password": "abcdef",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", rec.Code)
	}
}

func TestRegisterResponseOmitsPassword(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/create/user", "", map[string]string{
		"first_name":       "Ada",
		"last_name":        "Lovelace",
		"email":            "ada@example.com",
		"password":         "abcdef",
		"confirm_password": "abcdef",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	for _, key := range []string{"password", "password_hash"} {
		if _, ok := body[key]; ok {
			t.Fatalf("response leaks %q: %v", key, body)
		}
	}
}

func TestLoginFailureBodiesAreIdentical(t *testing.T) {
	h := newTestHandler(t)
	registerUser(t, h, "ada@example.com")

	unknown := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "abcdef",
	})
	wrong := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "zzzzzz",
	})

	if unknown.Code != http.StatusUnauthorized || wrong.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d / %d, want 401 / 401", unknown.Code, wrong.Code)
	}
	if !bytes.Equal(unknown.Body.Bytes(), wrong.Body.Bytes()) {
		t.Fatalf("failure bodies differ: %q vs %q", unknown.Body.String(), wrong.Body.String())
	}
}

func TestLoginSuccess(t *testing.T) {
	h := newTestHandler(t)
	registerUser(t, h, "ada@example.com")

	rec := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "abcdef",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["email"] != "ada@example.com" || body["token"] == "" {
		t.Fatalf("unexpected login body %v", body)
	}
}

func TestUpdateUserAuth(t *testing.T) {
	h := newTestHandler(t)
	id, token := registerUser(t, h, "ada@example.com")
	otherID, otherToken := registerUser(t, h, "grace@example.com")

	patch := map[string]any{"first_name": "Augusta"}

	rec := doJSON(t, h, http.MethodPut, "/update/user/"+id, "", patch)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPut, "/update/user/"+id, otherToken, patch)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign token status = %d, want 403", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPut, "/update/user/"+id, token, patch)
	if rec.Code != http.StatusOK {
		t.Fatalf("own token status = %d, body %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["first_name"] != "Augusta" {
		t.Fatalf("patch not applied: %v", body)
	}

	// conflicting email rejected with 409
	rec = doJSON(t, h, http.MethodPut, "/update/user/"+otherID, otherToken, map[string]any{
		"email": "ada@example.com",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("conflicting email status = %d, want 409", rec.Code)
	}
}

func TestUpdateUserRejectsEmptyName(t *testing.T) {
	h := newTestHandler(t)
	id, token := registerUser(t, h, "ada@example.com")

	rec := doJSON(t, h, http.MethodPut, "/update/user/"+id, token, map[string]any{
		"last_name": "   ",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChangePasswordEndpoint(t *testing.T) {
	h := newTestHandler(t)
	id, token := registerUser(t, h, "ada@example.com")
	path := "/update/user/" + id + "/changepassword"

	rec := doJSON(t, h, http.MethodPut, path, token, map[string]string{
		"current_password": "zzzzzz",
		"new_password":     "ghijkl",
		"confirm_password": "ghijkl",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong current status = %d, want 401", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPut, path, token, map[string]string{
		"current_password": "abcdef",
		"new_password":     "abcdef",
		"confirm_password": "abcdef",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("reuse status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPut, path, token, map[string]string{
		"current_password": "abcdef",
		"new_password":     "ghijkl",
		"confirm_password": "ghijkl",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("change status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "ghijkl",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login with new password status = %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)

	doJSON(t, h, http.MethodPost, "/add/todo", "", map[string]any{"title": "x"})

	rec := doJSON(t, h, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["todo_created"].(float64) < 1 {
		t.Fatalf("todo_created not counted: %v", body)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}
