package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/brainly/internal/client/collection"
	"github.com/dmitrijs2005/brainly/internal/client/services"
	"github.com/dmitrijs2005/brainly/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) readCredentials() (string, []byte, error) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return username, password, nil
}

// SignUp creates an account. The session is not touched; the user signs in
// separately afterwards.
func (a *App) SignUp(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.SignUp(ctx, username, password); err != nil {
		fmt.Fprintln(a.out, services.MessageOf(err, "Sign up failed"))
		return err
	}
	fmt.Fprintln(a.out, "Account created. Use 'signin' to continue.")
	return nil
}

// SignIn stores the session token and loads the collection on success.
func (a *App) SignIn(ctx context.Context) error {
	username, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.SignIn(ctx, username, password); err != nil {
		fmt.Fprintln(a.out, services.MessageOf(err, "Sign in failed"))
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", username)
	return a.refresh(ctx)
}

// SignOut forgets the session and the cached list.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.authService.SignOut(ctx); err != nil {
		fmt.Fprintln(a.out, services.MessageOf(err, "Sign out failed"))
		return err
	}
	a.items = nil
	a.view = collection.View{}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	u, err := a.authService.Me(ctx)
	if err != nil {
		fmt.Fprintln(a.out, services.MessageOf(err, "Could not load profile"))
		return err
	}
	fmt.Fprintln(a.out, u.Username)
	return nil
}
