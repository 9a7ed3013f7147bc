package services

import (
	"context"

	"github.com/dmitrijs2005/brainly/internal/client/models"
)

// fakeClient implements client.Client and records what it was asked to do.
type fakeClient struct {
	SignUpErr error
	SignInRet string
	SignInErr error
	MeRet     *models.User
	MeErr     error
	ListRet   []models.Item
	ListErr   error
	CreateErr error
	DeleteErr error
	ShareRet  string
	ShareErr  error
	TweetRet  *models.Tweet
	TweetErr  error

	Calls       []string
	LastCreds   models.Credentials
	LastToken   string
	LastCreate  models.NewContent
	LastDelete  string
	LastTweetID string
}

func (f *fakeClient) SignUp(ctx context.Context, creds models.Credentials) error {
	f.Calls = append(f.Calls, "signup")
	f.LastCreds = creds
	return f.SignUpErr
}

func (f *fakeClient) SignIn(ctx context.Context, creds models.Credentials) (string, error) {
	f.Calls = append(f.Calls, "signin")
	f.LastCreds = creds
	return f.SignInRet, f.SignInErr
}

func (f *fakeClient) Me(ctx context.Context, token string) (*models.User, error) {
	f.Calls = append(f.Calls, "me")
	f.LastToken = token
	return f.MeRet, f.MeErr
}

func (f *fakeClient) ListContent(ctx context.Context, token string) ([]models.Item, error) {
	f.Calls = append(f.Calls, "list")
	f.LastToken = token
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateContent(ctx context.Context, token string, c models.NewContent) error {
	f.Calls = append(f.Calls, "create")
	f.LastToken = token
	f.LastCreate = c
	return f.CreateErr
}

func (f *fakeClient) DeleteContent(ctx context.Context, token string, id string) error {
	f.Calls = append(f.Calls, "delete")
	f.LastToken = token
	f.LastDelete = id
	return f.DeleteErr
}

func (f *fakeClient) Share(ctx context.Context, token string) (string, error) {
	f.Calls = append(f.Calls, "share")
	f.LastToken = token
	return f.ShareRet, f.ShareErr
}

func (f *fakeClient) FetchTweet(ctx context.Context, id string) (*models.Tweet, error) {
	f.Calls = append(f.Calls, "tweet")
	f.LastTweetID = id
	return f.TweetRet, f.TweetErr
}

func (f *fakeClient) Close() error { return nil }
