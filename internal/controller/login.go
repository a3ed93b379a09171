package controller

import (
	"net/http"
	"time"

	"todolist-api/internal/apperr"
	"todolist-api/internal/auth"
	"todolist-api/internal/config"
	"todolist-api/internal/dto"
	"todolist-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies credentials against the stored bcrypt hash and returns
// a signed token. Unknown account and wrong password are indistinguishable
// to the caller.
func (h *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Wrap(apperr.Validation, err, "Invalid login request"))
		return
	}

	user, err := h.stores.Users.ByEmail(ctx, req.Username)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			fail(c, apperr.AccessDeniedf("Invalid credentials"))
			return
		}
		fail(c, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.Debug(ctx, "Password mismatch", "email", req.Username)
		fail(c, apperr.AccessDeniedf("Invalid credentials"))
		return
	}

	cfg := config.Get()
	p := auth.Principal{ID: user.ID, Email: user.Email, Role: user.RoleName}
	token, err := auth.IssueToken(p, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info(ctx, "Login successful", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}
