package auth_test

import (
	"context"
	"testing"
	"time"

	"todolist-api/internal/auth"

	"github.com/stretchr/testify/assert"
)

var (
	admin        = auth.Principal{ID: 99, Email: "admin@example.com", Role: "ADMIN"}
	owner        = auth.Principal{ID: 1, Email: "owner@example.com", Role: "USER"}
	collaborator = auth.Principal{ID: 2, Email: "collab@example.com", Role: "USER"}
	stranger     = auth.Principal{ID: 3, Email: "other@example.com", Role: "USER"}

	facts = auth.TodoFacts{OwnerID: 1, CollaboratorIDs: []int64{2}}
)

func TestCanReadTodo(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(auth.CanReadTodo(admin, facts))
	assert.True(auth.CanReadTodo(owner, facts))
	assert.True(auth.CanReadTodo(collaborator, facts))
	assert.False(auth.CanReadTodo(stranger, facts))
}

func TestCanModifyTodo(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(auth.CanModifyTodo(admin, facts))
	assert.True(auth.CanModifyTodo(owner, facts))
	// collaborators get read access only
	assert.False(auth.CanModifyTodo(collaborator, facts))
	assert.False(auth.CanModifyTodo(stranger, facts))
}

func TestCanManageCollaborators(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(auth.CanManageCollaborators(admin, facts))
	assert.True(auth.CanManageCollaborators(owner, facts))
	assert.False(auth.CanManageCollaborators(collaborator, facts))
	assert.False(auth.CanManageCollaborators(stranger, facts))
}

func TestCanAccessUser(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(auth.CanAccessUser(admin, 1))
	assert.True(auth.CanAccessUser(owner, 1))
	assert.False(auth.CanAccessUser(owner, 2))
	assert.False(auth.CanAccessUser(stranger, 1))
}

func TestFactsMembership(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(facts.IsOwner(owner))
	assert.False(facts.IsOwner(collaborator))
	assert.True(facts.IsCollaborator(collaborator))
	assert.False(facts.IsCollaborator(owner))
	assert.False(auth.TodoFacts{OwnerID: 1}.IsCollaborator(collaborator))
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	_, ok := auth.PrincipalFrom(context.Background())
	assert.False(ok)

	ctx := auth.WithPrincipal(context.Background(), owner)
	got, ok := auth.PrincipalFrom(ctx)
	assert.True(ok)
	assert.Equal(owner, got)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	token, err := auth.IssueToken(owner, "secret", time.Hour)
	assert.Nil(err)

	got, err := auth.ParseToken(token, "secret")
	assert.Nil(err)
	assert.Equal(owner, got)
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	token, err := auth.IssueToken(owner, "secret", time.Hour)
	assert.Nil(err)

	_, err = auth.ParseToken(token, "other-secret")
	assert.NotNil(err)
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	token, err := auth.IssueToken(owner, "secret", -time.Minute)
	assert.Nil(err)

	_, err = auth.ParseToken(token, "secret")
	assert.NotNil(err)
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	_, err := auth.IssueToken(owner, "", time.Hour)
	assert.NotNil(err)
}
