package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

func TestFromContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := NewContext(context.Background(), &Session{UserID: "u1", Role: model.RoleUser})
	s, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", s.UserID)
}

func TestCanAccessUser(t *testing.T) {
	user := &Session{UserID: "u1", Role: model.RoleUser}
	admin := &Session{UserID: "a1", Role: model.RoleAdmin}

	assert.True(t, user.CanAccessUser("u1"))
	assert.False(t, user.CanAccessUser("u2"))
	assert.True(t, admin.CanAccessUser("u2"))

	var none *Session
	assert.False(t, none.CanAccessUser("u1"))
}
