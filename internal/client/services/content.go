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

// SharePath is appended to the share base URL before the hash.
const SharePath = "/brain/share/"

type ContentService interface {
	List(ctx context.Context) ([]models.Item, error)
	Create(ctx context.Context, c models.NewContent) error
	Delete(ctx context.Context, id string) error
	// Share asks the server for a share hash and returns the public URL.
	Share(ctx context.Context) (string, error)
	Tweet(ctx context.Context, id string) (*models.Tweet, error)
}

type contentService struct {
	client    client.Client
	session   session.Store
	logger    logging.Logger
	shareBase string
}

func NewContentService(c client.Client, s session.Store, l logging.Logger, shareBase string) ContentService {
	return &contentService{
		client:    c,
		session:   s,
		logger:    l,
		shareBase: strings.TrimRight(shareBase, "/"),
	}
}

func (s *contentService) List(ctx context.Context) ([]models.Item, error) {
	token, err := tokenOf(ctx, s.session)
	if err != nil {
		return nil, err
	}
	items, err := s.client.ListContent(ctx, token)
	if err != nil {
		s.logger.Error(ctx, "list content failed", "error", err)
		return nil, fmt.Errorf("list content: %w", err)
	}
	s.logger.Debug(ctx, "content loaded", "count", len(items))
	return items, nil
}

// Create trims title and link, rejects blanks and unknown kinds, and only
// then checks the session. Nothing is sent when any check fails.
func (s *contentService) Create(ctx context.Context, c models.NewContent) error {
	c.Title = strings.TrimSpace(c.Title)
	c.Link = strings.TrimSpace(c.Link)

	if !c.Type.Valid() {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("unknown type %q", c.Type)}
	}
	if c.Title == "" || c.Link == "" {
		return &ValidationError{Field: "content", Message: "Title and link are required"}
	}

	token, err := tokenOf(ctx, s.session)
	if err != nil {
		return err
	}
	if err := s.client.CreateContent(ctx, token, c); err != nil {
		s.logger.Error(ctx, "create content failed", "type", c.Type, "error", err)
		return fmt.Errorf("create content: %w", err)
	}
	s.logger.Info(ctx, "content created", "type", c.Type, "title", c.Title)
	return nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := required("id", id); err != nil {
		return err
	}
	token, err := tokenOf(ctx, s.session)
	if err != nil {
		return err
	}
	if err := s.client.DeleteContent(ctx, token, id); err != nil {
		s.logger.Error(ctx, "delete content failed", "id", id, "error", err)
		return fmt.Errorf("delete content: %w", err)
	}
	s.logger.Info(ctx, "content deleted", "id", id)
	return nil
}

func (s *contentService) Share(ctx context.Context) (string, error) {
	token, err := tokenOf(ctx, s.session)
	if err != nil {
		return "", err
	}
	hash, err := s.client.Share(ctx, token)
	if err != nil {
		s.logger.Error(ctx, "share failed", "error", err)
		return "", fmt.Errorf("share: %w", err)
	}
	return ShareURL(s.shareBase, hash), nil
}

func (s *contentService) Tweet(ctx context.Context, id string) (*models.Tweet, error) {
	t, err := s.client.FetchTweet(ctx, id)
	if err != nil {
		s.logger.Debug(ctx, "tweet embed unavailable", "id", id, "error", err)
		return nil, err
	}
	return t, nil
}

// ShareURL composes the public link for a share hash.
func ShareURL(base, hash string) string {
	return strings.TrimRight(base, "/") + SharePath + hash
}
