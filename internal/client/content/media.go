package content

import (
	"errors"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/brainly/internal/client/models"
)

// ErrUnrecognizedURL is returned when a link has no embeddable form.
// Callers fall back to showing the raw link.
var ErrUnrecognizedURL = errors.New("unrecognized url")

type MediaKind int

// MediaNone is the zero value; every described kind declares another.
const (
	MediaNone MediaKind = iota
	MediaLink
	MediaEmbed
	MediaTweet
	MediaSummary
)

func (m MediaKind) String() string {
	switch m {
	case MediaEmbed:
		return "embed"
	case MediaTweet:
		return "tweet"
	case MediaSummary:
		return "summary"
	case MediaLink:
		return "link"
	default:
		return "none"
	}
}

// Media is the resolved body of a card. EmbedURL is set for MediaEmbed and
// TweetID for MediaTweet; Link always carries the original link.
type Media struct {
	Kind     MediaKind
	Link     string
	EmbedURL string
	TweetID  string
}

// Resolve picks the renderer declared for k. It never fails: links that
// cannot be embedded resolve to MediaLink.
func Resolve(k models.Kind, link string) Media {
	m := Media{Kind: MediaLink, Link: link}
	switch Describe(k).Media {
	case MediaEmbed:
		if embed, err := YouTubeEmbedURL(link); err == nil {
			m.Kind, m.EmbedURL = MediaEmbed, embed
		}
	case MediaTweet:
		if id, ok := TweetID(link); ok {
			m.Kind, m.TweetID = MediaTweet, id
		}
	case MediaSummary:
		m.Kind = MediaSummary
	}
	return m
}

const youtubeEmbedBase = "https://www.youtube.com/embed/"

// YouTubeEmbedURL rewrites youtu.be/<id> and youtube.com/watch?v=<id> (any
// subdomain) to the player URL.
func YouTubeEmbedURL(link string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Host == "" {
		return "", ErrUnrecognizedURL
	}
	host := strings.ToLower(u.Hostname())

	switch {
	case host == "youtu.be" || strings.HasSuffix(host, ".youtu.be"):
		id := strings.Trim(u.Path, "/")
		if id == "" || strings.Contains(id, "/") {
			return "", ErrUnrecognizedURL
		}
		return youtubeEmbedBase + url.PathEscape(id), nil
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		if id := u.Query().Get("v"); id != "" {
			return youtubeEmbedBase + url.PathEscape(id), nil
		}
	}
	return "", ErrUnrecognizedURL
}

// TweetID extracts the numeric id from /<user>/status/<id> or
// /<user>/statuses/<id>.
func TweetID(link string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", false
	}
	parts := strings.Split(u.Path, "/")
	if len(parts) < 4 || (parts[2] != "status" && parts[2] != "statuses") {
		return "", false
	}
	id := parts[3]
	if id == "" || strings.Trim(id, "0123456789") != "" {
		return "", false
	}
	return id, true
}
