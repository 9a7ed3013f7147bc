package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/brainly/internal/client/client"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/common"
	"github.com/dmitrijs2005/brainly/internal/logging"
)

// stubInputs feeds answers to getSimpleText in order and returns password
// from getPassword. It fails the test if a prompt runs out of answers.
func stubInputs(t *testing.T, password []byte, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	signedIn bool
	username string

	upUser, inUser string
	upPass, inPass []byte

	signUpErr  error
	signInErr  error
	signOutErr error
}

func (f *fakeAuth) SignUp(_ context.Context, user string, pass []byte) error {
	f.upUser, f.upPass = user, append([]byte(nil), pass...)
	return f.signUpErr
}

func (f *fakeAuth) SignIn(_ context.Context, user string, pass []byte) error {
	f.inUser, f.inPass = user, append([]byte(nil), pass...)
	if f.signInErr != nil {
		return f.signInErr
	}
	f.signedIn, f.username = true, user
	return nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.signedIn, f.username = false, ""
	return nil
}

func (f *fakeAuth) Me(context.Context) (*models.User, error) {
	if !f.signedIn {
		return nil, client.ErrUnauthenticated
	}
	return &models.User{Username: f.username}, nil
}

func (f *fakeAuth) SignedIn(context.Context) bool { return f.signedIn }

func (f *fakeAuth) CachedUsername(context.Context) string { return f.username }

type fakeContent struct {
	auth  *fakeAuth
	items []models.Item

	created   []models.NewContent
	deleted   []string
	listErr   error
	createErr error
	deleteErr error
	shareURL  string
	shareErr  error
}

func (f *fakeContent) List(context.Context) ([]models.Item, error) {
	if !f.auth.signedIn {
		return nil, client.ErrUnauthenticated
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Item(nil), f.items...), nil
}

func (f *fakeContent) Create(_ context.Context, c models.NewContent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, c)
	f.items = append(f.items, models.Item{ID: "new", Title: c.Title, Link: c.Link, Type: c.Type})
	return nil
}

func (f *fakeContent) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeContent) Share(context.Context) (string, error) {
	return f.shareURL, f.shareErr
}

func (f *fakeContent) Tweet(context.Context, string) (*models.Tweet, error) {
	return nil, common.ErrorNotFound
}

func sampleItems() []models.Item {
	return []models.Item{
		{ID: "1", Title: "Go concurrency talk", Link: "https://youtu.be/f6kdp27TYZs", Type: models.KindYouTube},
		{ID: "2", Title: "Release notes", Link: "https://x.com/golang/status/42", Type: models.KindTwitter},
		{ID: "3", Title: "Effective Go", Link: "https://go.dev/doc/effective_go", Type: models.KindDocument},
	}
}

func newTestApp(signedIn bool) (*App, *fakeAuth, *fakeContent, *bytes.Buffer) {
	fa := &fakeAuth{signedIn: signedIn, username: "alice"}
	fc := &fakeContent{auth: fa, items: sampleItems(), shareURL: "http://localhost:5173/brain/share/h4sh"}
	out := &bytes.Buffer{}
	a := NewApp(fa, fc, logging.Discard())
	a.out = out
	return a, fa, fc, out
}
