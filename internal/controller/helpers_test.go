package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"todolist-api/internal/auth"
	"todolist-api/internal/controller"
	"todolist-api/internal/models"
	"todolist-api/internal/routes"
	"todolist-api/internal/store"

	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", testSecret)
	os.Setenv("BCRYPT_COST", "4")
	// Point Redis at a dead port so the cache stays cold across tests.
	os.Setenv("REDIS_URL", "redis://127.0.0.1:1/0")
	os.Exit(m.Run())
}

type testEnv struct {
	router http.Handler
	stores store.Stores
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	stores := newFakeStores()
	return &testEnv{
		router: routes.Router(controller.New(stores)),
		stores: stores,
	}
}

func (e *testEnv) addUser(t *testing.T, first, email, password string, roleID int64) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	roleName := models.RoleUserName
	if roleID == models.RoleAdminID {
		roleName = models.RoleAdminName
	}
	user := &models.User{
		FirstName: first,
		LastName:  "Tester",
		Email:     email,
		Password:  string(hash),
		RoleID:    roleID,
		RoleName:  roleName,
	}
	if err := e.stores.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (e *testEnv) addTodo(t *testing.T, title string, ownerID int64) *models.ToDo {
	t.Helper()
	todo := &models.ToDo{Title: title, CreatedAt: time.Now(), OwnerID: ownerID}
	if err := e.stores.Todos.Create(context.Background(), todo); err != nil {
		t.Fatalf("seed todo: %v", err)
	}
	return todo
}

func (e *testEnv) addTask(t *testing.T, name string, todoID int64) *models.Task {
	t.Helper()
	task := &models.Task{
		Name:     name,
		Priority: models.PriorityMedium,
		TodoID:   todoID,
		StateID:  models.StateNewID,
		State:    "NEW",
	}
	if err := e.stores.Tasks.Create(context.Background(), task); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func bearer(t *testing.T, user *models.User) string {
	t.Helper()
	p := auth.Principal{ID: user.ID, Email: user.Email, Role: user.RoleName}
	token, err := auth.IssueToken(p, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
