// Seed creates the schema plus an admin and two demo users with a
// sample todo and tasks. Run from project root: go run ./scripts/seed
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"todolist-api/internal/config"
	"todolist-api/internal/database"
	"todolist-api/internal/models"
	"todolist-api/internal/repository"
	"todolist-api/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	loadEnvFile(".env")

	ctx := context.Background()
	db := database.InitDB(ctx)
	if db == nil {
		fmt.Fprintln(os.Stderr, "DATABASE_URL not set or DB connection failed")
		os.Exit(1)
	}
	if err := database.MigrateOrCreateSchema(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Schema failed:", err)
		os.Exit(1)
	}

	stores := repository.New(db)

	admin := seedUser(ctx, stores, "Ada", "Admin", "admin@example.com", "admin-pass", models.RoleAdminID, models.RoleAdminName)
	owner := seedUser(ctx, stores, "Oli", "Owner", "owner@example.com", "owner-pass", models.RoleUserID, models.RoleUserName)
	seedUser(ctx, stores, "Cleo", "Collab", "collab@example.com", "collab-pass", models.RoleUserID, models.RoleUserName)

	todo := &models.ToDo{Title: "Groceries", CreatedAt: time.Now(), OwnerID: owner.ID}
	if err := stores.Todos.Create(ctx, todo); err != nil {
		fmt.Fprintln(os.Stderr, "Seed todo failed:", err)
		os.Exit(1)
	}
	priorities := []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
	for i, name := range []string{"Buy milk", "Buy bread", "Buy coffee"} {
		task := &models.Task{
			Name:     name,
			Priority: priorities[i],
			TodoID:   todo.ID,
			StateID:  models.StateNewID,
		}
		if err := stores.Tasks.Create(ctx, task); err != nil {
			fmt.Fprintln(os.Stderr, "Seed task failed:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded admin id=%d, owner id=%d, todo id=%d\n", admin.ID, owner.ID, todo.ID)
}

func seedUser(ctx context.Context, stores store.Stores, first, last, email, password string, roleID int64, roleName string) *models.User {
	if existing, err := stores.Users.ByEmail(ctx, email); err == nil {
		fmt.Printf("User %s already seeded (id=%d)\n", email, existing.ID)
		return existing
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.Get().BcryptCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Hash failed:", err)
		os.Exit(1)
	}
	user := &models.User{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  string(hash),
		RoleID:    roleID,
		RoleName:  roleName,
	}
	if err := stores.Users.Create(ctx, user); err != nil {
		fmt.Fprintln(os.Stderr, "Seed user failed:", err)
		os.Exit(1)
	}
	return user
}

func loadEnvFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		val := strings.Trim(strings.TrimSpace(line[idx+1:]), `"'`)
		if key != "" && os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}
}
