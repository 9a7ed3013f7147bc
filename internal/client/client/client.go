package client

import (
	"context"

	"github.com/dmitrijs2005/brainly/internal/client/models"
)

// Client is the remote Brainly API as consumed by the client. Methods that
// take a token refuse to run with an empty one and return
// ErrUnauthenticated without touching the network.
type Client interface {
	SignUp(ctx context.Context, creds models.Credentials) error
	SignIn(ctx context.Context, creds models.Credentials) (string, error)
	Me(ctx context.Context, token string) (*models.User, error)
	ListContent(ctx context.Context, token string) ([]models.Item, error)
	CreateContent(ctx context.Context, token string, c models.NewContent) error
	DeleteContent(ctx context.Context, token string, id string) error
	Share(ctx context.Context, token string) (string, error)
	FetchTweet(ctx context.Context, id string) (*models.Tweet, error)
	Close() error
}
