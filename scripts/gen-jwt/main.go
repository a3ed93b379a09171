// gen-jwt mints a signed token for manual API testing.
// Usage: JWT_SECRET=... go run ./scripts/gen-jwt [user-id] [role]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"todolist-api/internal/auth"
	"todolist-api/internal/models"
)

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-me"
	}

	userID := int64(1)
	if len(os.Args) > 1 {
		if n, err := strconv.ParseInt(os.Args[1], 10, 64); err == nil {
			userID = n
		}
	}
	role := models.RoleUserName
	if len(os.Args) > 2 {
		role = os.Args[2]
	}

	p := auth.Principal{ID: userID, Email: "test@example.com", Role: role}
	signed, err := auth.IssueToken(p, secret, 24*time.Hour)
	if err != nil {
		panic(err)
	}
	fmt.Println(signed)
}
