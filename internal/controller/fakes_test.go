package controller_test

import (
	"context"
	"sort"
	"sync"

	"todolist-api/internal/apperr"
	"todolist-api/internal/models"
	"todolist-api/internal/store"
)

// In-memory stores mirroring the Postgres behavior the controllers rely
// on: NotFound for missing rows, cascades from todo to tasks and
// collaborator rows, and idempotent activity inserts.

type fakeUsers struct {
	mu   sync.Mutex
	m    map[int64]models.User
	next int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{m: map[int64]models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	user.ID = f.next
	f.m[user.ID] = *user
	return nil
}

func (f *fakeUsers) ByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.m[id]
	if !ok {
		return nil, apperr.NotFoundf("User with id %d not found", id)
	}
	return &u, nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.m {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, apperr.NotFoundf("User with email %s not found", email)
}

func (f *fakeUsers) Update(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.m[user.ID]; !ok {
		return apperr.NotFoundf("User with id %d not found", user.ID)
	}
	f.m[user.ID] = *user
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.m[id]; !ok {
		return apperr.NotFoundf("User with id %d not found", id)
	}
	delete(f.m, id)
	return nil
}

func (f *fakeUsers) All(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.m {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeTodos struct {
	mu    sync.Mutex
	m     map[int64]models.ToDo
	next  int64
	tasks *fakeTasks
}

func newFakeTodos(tasks *fakeTasks) *fakeTodos {
	return &fakeTodos{m: map[int64]models.ToDo{}, tasks: tasks}
}

func (f *fakeTodos) Create(_ context.Context, todo *models.ToDo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	todo.ID = f.next
	f.m[todo.ID] = copyTodo(*todo)
	return nil
}

func (f *fakeTodos) ByID(_ context.Context, id int64) (*models.ToDo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.m[id]
	if !ok {
		return nil, apperr.NotFoundf("ToDo with id %d not found", id)
	}
	t = copyTodo(t)
	return &t, nil
}

func (f *fakeTodos) UpdateTitle(_ context.Context, id int64, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.m[id]
	if !ok {
		return apperr.NotFoundf("ToDo with id %d not found", id)
	}
	t.Title = title
	f.m[id] = t
	return nil
}

func (f *fakeTodos) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	if _, ok := f.m[id]; !ok {
		f.mu.Unlock()
		return apperr.NotFoundf("ToDo with id %d not found", id)
	}
	delete(f.m, id)
	f.mu.Unlock()
	f.tasks.deleteByTodo(id)
	return nil
}

func (f *fakeTodos) All(_ context.Context) ([]models.ToDo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ToDo
	for _, t := range f.m {
		out = append(out, copyTodo(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTodos) ByOwner(_ context.Context, ownerID int64) ([]models.ToDo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ToDo
	for _, t := range f.m {
		if t.OwnerID == ownerID {
			out = append(out, copyTodo(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTodos) AddCollaborator(_ context.Context, todoID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.m[todoID]
	if !ok {
		return apperr.NotFoundf("ToDo with id %d not found", todoID)
	}
	t.CollaboratorIDs = append(t.CollaboratorIDs, userID)
	f.m[todoID] = t
	return nil
}

func (f *fakeTodos) RemoveCollaborator(_ context.Context, todoID, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.m[todoID]
	if !ok {
		return apperr.NotFoundf("ToDo with id %d not found", todoID)
	}
	var kept []int64
	for _, id := range t.CollaboratorIDs {
		if id != userID {
			kept = append(kept, id)
		}
	}
	t.CollaboratorIDs = kept
	f.m[todoID] = t
	return nil
}

func copyTodo(t models.ToDo) models.ToDo {
	ids := make([]int64, len(t.CollaboratorIDs))
	copy(ids, t.CollaboratorIDs)
	t.CollaboratorIDs = ids
	return t
}

type fakeTasks struct {
	mu   sync.Mutex
	m    map[int64]models.Task
	next int64
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{m: map[int64]models.Task{}}
}

func (f *fakeTasks) Create(_ context.Context, task *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	task.ID = f.next
	f.m[task.ID] = *task
	return nil
}

func (f *fakeTasks) ByID(_ context.Context, id int64) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.m[id]
	if !ok {
		return nil, apperr.NotFoundf("Task with id %d not found", id)
	}
	return &t, nil
}

func (f *fakeTasks) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.m[id]; !ok {
		return apperr.NotFoundf("Task with id %d not found", id)
	}
	delete(f.m, id)
	return nil
}

func (f *fakeTasks) All(_ context.Context) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Task
	for _, t := range f.m {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTasks) ByTodo(_ context.Context, todoID int64) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Task
	for _, t := range f.m {
		if t.TodoID == todoID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTasks) deleteByTodo(todoID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, t := range f.m {
		if t.TodoID == todoID {
			delete(f.m, id)
		}
	}
}

type fakeStates struct{}

func (fakeStates) ByID(_ context.Context, id int64) (*models.State, error) {
	names := map[int64]string{1: "NEW", 2: "DOING", 3: "VERIFY", 4: "DONE"}
	name, ok := names[id]
	if !ok {
		return nil, apperr.NotFoundf("State with id %d not found", id)
	}
	return &models.State{ID: id, Name: name}, nil
}

type fakeRoles struct{}

func (fakeRoles) ByID(_ context.Context, id int64) (*models.Role, error) {
	names := map[int64]string{models.RoleAdminID: models.RoleAdminName, models.RoleUserID: models.RoleUserName}
	name, ok := names[id]
	if !ok {
		return nil, apperr.NotFoundf("Role with id %d not found", id)
	}
	return &models.Role{ID: id, Name: name}, nil
}

type fakeActivity struct {
	mu     sync.Mutex
	events []models.Event
}

func (f *fakeActivity) Insert(_ context.Context, event *models.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.ID == event.ID {
			return nil
		}
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeActivity) Recent(_ context.Context, limit int) ([]models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Event
	for i := len(f.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.events[i])
	}
	return out, nil
}

func newFakeStores() store.Stores {
	tasks := newFakeTasks()
	return store.Stores{
		Users:    newFakeUsers(),
		Todos:    newFakeTodos(tasks),
		Tasks:    tasks,
		States:   fakeStates{},
		Roles:    fakeRoles{},
		Activity: &fakeActivity{},
	}
}
