package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"todolist-api/internal/apperr"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	cases := []struct {
		err    error
		status int
	}{
		{apperr.Validationf("bad payload"), http.StatusBadRequest},
		{apperr.MissingRef("User"), http.StatusBadRequest},
		{apperr.NotFoundf("ToDo with id %d not found", 7), http.StatusNotFound},
		{apperr.AccessDeniedf("Access denied"), http.StatusUnauthorized},
		{apperr.Conflictf("already a collaborator"), http.StatusConflict},
		{&pq.Error{Code: "23505"}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(tc.status, apperr.Status(tc.err), tc.err.Error())
	}
}

func TestStatusOfWrappedError(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	inner := apperr.NotFoundf("Task with id 4 not found")
	wrapped := fmt.Errorf("loading facts: %w", inner)
	assert.Equal(http.StatusNotFound, apperr.Status(wrapped))

	pqWrapped := fmt.Errorf("insert: %w", &pq.Error{Code: "23503"})
	assert.Equal(http.StatusBadRequest, apperr.Status(pqWrapped))
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(apperr.NotFound, apperr.KindOf(apperr.NotFoundf("gone")))
	assert.Equal(apperr.Constraint, apperr.KindOf(&pq.Error{Code: "23505"}))
	assert.Equal(apperr.Unknown, apperr.KindOf(&pq.Error{Code: "42601"}))
	assert.Equal(apperr.Unknown, apperr.KindOf(errors.New("boom")))
}

func TestBodyless(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(apperr.Bodyless(apperr.Conflictf("dup")))
	assert.True(apperr.Bodyless(&pq.Error{Code: "23505"}))
	assert.False(apperr.Bodyless(apperr.NotFoundf("gone")))
	assert.False(apperr.Bodyless(errors.New("boom")))
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	plain := apperr.NotFoundf("User with id %d not found", 12)
	assert.Equal("User with id 12 not found", plain.Error())

	wrapped := apperr.Wrap(apperr.Validation, errors.New("bad json"), "Invalid payload")
	assert.Equal("Invalid payload: bad json", wrapped.Error())
	assert.Equal("bad json", errors.Unwrap(wrapped).Error())
}
