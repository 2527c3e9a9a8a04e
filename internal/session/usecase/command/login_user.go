package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bellarosa/storefront/internal/session"
	"github.com/bellarosa/storefront/internal/session/domain"
	"github.com/bellarosa/storefront/pkg/auth"
)

// LoginCommand represents the demo login command. No password field exists:
// the storefront performs no credential verification.
type LoginCommand struct {
	SessionID string
	Email     string
	Name      string
	Avatar    string
}

// LoginResponse represents the response after a successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginHandler handles the demo login command
type LoginHandler struct {
	sessions *session.Manager
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(sessions *session.Manager) *LoginHandler {
	return &LoginHandler{sessions: sessions}
}

// Handle executes the login: it mints a user from the submitted profile,
// replaces the session's user slot and issues a demo token.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResponse, error) {
	if cmd.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	name := cmd.Name
	if name == "" {
		name = strings.SplitN(cmd.Email, "@", 2)[0]
	}

	user := &domain.User{
		ID:     uuid.NewString(),
		Email:  cmd.Email,
		Name:   name,
		Avatar: cmd.Avatar,
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	h.sessions.Get(ctx, cmd.SessionID).Login(ctx, user)

	return &LoginResponse{Token: token, User: user}, nil
}

// LogoutCommand represents the logout command
type LogoutCommand struct {
	SessionID string
}

// LogoutHandler handles the logout command
type LogoutHandler struct {
	sessions *session.Manager
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(sessions *session.Manager) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// Handle executes the logout, clearing the user slot
func (h *LogoutHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return fmt.Errorf("session id is required")
	}

	h.sessions.Get(ctx, cmd.SessionID).Logout(ctx)
	return nil
}
