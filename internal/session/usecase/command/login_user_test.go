package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellarosa/storefront/pkg/auth"
)

func TestLoginHandler_IssuesTokenAndFillsSlot(t *testing.T) {
	sessions, _ := testFixtures()
	h := NewLoginHandler(sessions)
	ctx := context.Background()

	resp, err := h.Handle(ctx, LoginCommand{SessionID: "s1", Email: "rosa@example.com", Name: "Rosa"})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "rosa@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	container := sessions.Get(ctx, "s1")
	assert.True(t, container.IsAuthenticated())
	require.NotNil(t, container.User())
	assert.Equal(t, "Rosa", container.User().Name)
}

func TestLoginHandler_DerivesNameFromEmail(t *testing.T) {
	sessions, _ := testFixtures()
	h := NewLoginHandler(sessions)

	resp, err := h.Handle(context.Background(), LoginCommand{SessionID: "s1", Email: "bella@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "bella", resp.User.Name)
}

func TestLoginHandler_RequiresEmail(t *testing.T) {
	sessions, _ := testFixtures()
	h := NewLoginHandler(sessions)

	_, err := h.Handle(context.Background(), LoginCommand{SessionID: "s1"})
	assert.Error(t, err)
}

func TestLogoutHandler_ClearsSlot(t *testing.T) {
	sessions, _ := testFixtures()
	ctx := context.Background()

	_, err := NewLoginHandler(sessions).Handle(ctx, LoginCommand{SessionID: "s1", Email: "rosa@example.com"})
	require.NoError(t, err)

	require.NoError(t, NewLogoutHandler(sessions).Handle(ctx, LogoutCommand{SessionID: "s1"}))

	container := sessions.Get(ctx, "s1")
	assert.False(t, container.IsAuthenticated())
	assert.Nil(t, container.User())
}
