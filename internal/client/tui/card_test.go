package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_TwoPhaseDelete(t *testing.T) {
	c := NewCard(models.Item{ID: "42", Title: "t", Type: models.KindLink, Link: "https://go.dev"}, nil)

	c, cmd := c.Update(key("d"))
	assert.Nil(t, cmd)
	assert.False(t, c.Confirming(), "unselected card ignores keys")

	c.SetSelected(true)
	c, _ = c.Update(key("d"))
	require.True(t, c.Confirming())
	assert.Contains(t, c.View(), "Delete this item?")

	c, cmd = c.Update(key("n"))
	assert.Nil(t, cmd)
	assert.False(t, c.Confirming())

	c, _ = c.Update(key("d"))
	c, cmd = c.Update(key("y"))
	assert.False(t, c.Confirming())
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, DeleteIntentMsg{ID: "42"}, msgs[0])
}

func TestCard_DeselectCancelsPrompt(t *testing.T) {
	c := NewCard(models.Item{ID: "1", Type: models.KindTag}, nil)
	c.SetSelected(true)
	c, _ = c.Update(key("d"))
	c.SetSelected(false)
	assert.False(t, c.Confirming())
}

func TestCard_TweetEmbedIsKeyedByID(t *testing.T) {
	var fetched []string
	fetch := func(_ context.Context, id string) (*models.Tweet, error) {
		fetched = append(fetched, id)
		return &models.Tweet{ID: id, Author: "Gopher", Text: "post " + id}, nil
	}
	c := NewCard(models.Item{ID: "1", Title: "t", Type: models.KindTwitter, Link: "https://twitter.com/a/status/111"}, fetch)

	assert.Contains(t, c.View(), "loading post")
	initMsgs := collect(c.Init())
	require.Len(t, initMsgs, 1)

	// a response for another post is ignored
	c, _ = c.Update(tweetLoadedMsg{id: "999", tweet: &models.Tweet{Text: "wrong"}})
	assert.False(t, c.TweetLoaded())

	c, _ = c.Update(initMsgs[0])
	require.True(t, c.TweetLoaded())
	assert.Contains(t, c.View(), "post 111")

	// a new id resets the loaded flag and issues a fresh lookup
	cmd := c.SetItem(models.Item{ID: "1", Title: "t", Type: models.KindTwitter, Link: "https://twitter.com/a/status/222"})
	assert.False(t, c.TweetLoaded())
	require.NotNil(t, cmd)

	// the late answer for the old id must not flip the flag
	c, _ = c.Update(initMsgs[0])
	assert.False(t, c.TweetLoaded())

	msgs := collect(cmd)
	c, _ = c.Update(msgs[0])
	assert.True(t, c.TweetLoaded())
	assert.Contains(t, c.View(), "post 222")
	assert.Equal(t, []string{"111", "222"}, fetched)
}

func TestCard_SameTweetIDKeepsEmbed(t *testing.T) {
	fetch := func(_ context.Context, id string) (*models.Tweet, error) {
		return &models.Tweet{ID: id, Text: "hello"}, nil
	}
	item := models.Item{ID: "1", Title: "t", Type: models.KindTwitter, Link: "https://x.com/a/status/5"}
	c := NewCard(item, fetch)
	c, _ = c.Update(collect(c.Init())[0])

	item.Title = "renamed"
	assert.Nil(t, c.SetItem(item))
	assert.True(t, c.TweetLoaded())
}

func TestCard_TweetFailureFallsBackToLink(t *testing.T) {
	c := NewCard(models.Item{ID: "1", Title: "t", Type: models.KindTwitter, Link: "https://twitter.com/a/status/7"}, nil)
	c, _ = c.Update(tweetLoadedMsg{id: "7", err: assert.AnError})
	assert.Contains(t, c.View(), "Twitter Post")
}

func TestCard_BodyPerKind(t *testing.T) {
	tests := []struct {
		item models.Item
		want string
	}{
		{models.Item{Type: models.KindYouTube, Link: "https://youtu.be/abc123"}, "youtube.com/embed/abc123"},
		{models.Item{Type: models.KindYouTube, Link: "https://example.com/x"}, "https://example.com/x"},
		{models.Item{Type: models.KindTwitter, Link: "https://twitter.com/someone"}, "https://twitter.com/someone"},
		{models.Item{Type: models.KindDocument, Link: "doc-7"}, "Document"},
		{models.Item{Type: models.KindTag, Link: "golang"}, "Tag"},
		{models.Item{Type: models.KindLink, Link: "https://go.dev"}, "Web Link"},
	}
	for _, tt := range tests {
		t.Run(string(tt.item.Type)+" "+tt.item.Link, func(t *testing.T) {
			c := NewCard(tt.item, nil)
			assert.True(t, strings.Contains(c.View(), tt.want), c.View())
		})
	}
}
