// Package services contains the application services shared by the TUI and
// the REPL. They sit between the screens and the API client and own the
// session side effects.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/brainly/internal/client/client"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/client/session"
	"github.com/dmitrijs2005/brainly/internal/logging"
)

// AuthService covers account creation and the session lifecycle.
//
// SignUp never touches the session; the caller moves on to sign-in only
// when it returns nil. SignIn stores the token and username on success.
type AuthService interface {
	SignUp(ctx context.Context, username string, password []byte) error
	SignIn(ctx context.Context, username string, password []byte) error
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	SignedIn(ctx context.Context) bool
	// CachedUsername is the name saved at sign-in, or "" when unknown.
	CachedUsername(ctx context.Context) string
}

type authService struct {
	client  client.Client
	session session.Store
	logger  logging.Logger
}

func NewAuthService(c client.Client, s session.Store, l logging.Logger) AuthService {
	return &authService{client: c, session: s, logger: l}
}

func credentials(username string, password []byte) (models.Credentials, error) {
	username = strings.TrimSpace(username)
	if err := required("username", username); err != nil {
		return models.Credentials{}, err
	}
	if err := required("password", string(password)); err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{Username: username, Password: string(password)}, nil
}

func (a *authService) SignUp(ctx context.Context, username string, password []byte) error {
	creds, err := credentials(username, password)
	if err != nil {
		return err
	}
	if err := a.client.SignUp(ctx, creds); err != nil {
		a.logger.Warn(ctx, "signup failed", "username", creds.Username, "error", err)
		return fmt.Errorf("signup: %w", err)
	}
	a.logger.Info(ctx, "signed up", "username", creds.Username)
	return nil
}

func (a *authService) SignIn(ctx context.Context, username string, password []byte) error {
	creds, err := credentials(username, password)
	if err != nil {
		return err
	}
	token, err := a.client.SignIn(ctx, creds)
	if err != nil {
		a.logger.Warn(ctx, "signin failed", "username", creds.Username, "error", err)
		return fmt.Errorf("signin: %w", err)
	}
	if err := a.session.Save(ctx, token, creds.Username); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	a.logger.Info(ctx, "signed in", "username", creds.Username)
	return nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.logger.Info(ctx, "signed out")
	return nil
}

// Me fetches the profile; the cached username is not consulted.
func (a *authService) Me(ctx context.Context) (*models.User, error) {
	token, err := a.token(ctx)
	if err != nil {
		return nil, err
	}
	return a.client.Me(ctx, token)
}

func (a *authService) SignedIn(ctx context.Context) bool {
	return session.HasToken(ctx, a.session)
}

func (a *authService) CachedUsername(ctx context.Context) string {
	name, err := a.session.Username(ctx)
	if err != nil {
		a.logger.Debug(ctx, "read cached username", "error", err)
		return ""
	}
	return name
}

func (a *authService) token(ctx context.Context) (string, error) {
	return tokenOf(ctx, a.session)
}

// tokenOf fails with client.ErrUnauthenticated when no token is stored so
// no request leaves the process without credentials.
func tokenOf(ctx context.Context, s session.Store) (string, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	if token == "" {
		return "", client.ErrUnauthenticated
	}
	return token, nil
}
