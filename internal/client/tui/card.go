package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/brainly/internal/client/content"
	"github.com/dmitrijs2005/brainly/internal/client/models"
)

// TweetFetcher resolves a post id to its embed.
type TweetFetcher func(ctx context.Context, id string) (*models.Tweet, error)

const cardWidth = 44

// Card shows one item. It owns selection and the delete prompt; deletion
// itself is the parent's job and is requested with DeleteIntentMsg.
type Card struct {
	item  models.Item
	desc  content.Descriptor
	media content.Media

	selected   bool
	confirming bool

	// tweet embed state, keyed by media.TweetID
	tweet       *models.Tweet
	tweetLoaded bool
	tweetFailed bool

	fetch TweetFetcher
}

func NewCard(item models.Item, fetch TweetFetcher) Card {
	return Card{
		item:  item,
		desc:  content.Describe(item.Type),
		media: content.Resolve(item.Type, item.Link),
		fetch: fetch,
	}
}

func (c Card) Item() models.Item { return c.item }

func (c Card) Confirming() bool { return c.confirming }

func (c Card) TweetLoaded() bool { return c.tweetLoaded }

func (c *Card) SetSelected(v bool) {
	c.selected = v
	if !v {
		c.confirming = false
	}
}

// Init starts the tweet lookup for twitter cards with a post id.
func (c Card) Init() tea.Cmd {
	return c.loadTweet()
}

// SetItem swaps the item. When the tweet id changes the embed state is
// reset and a fresh lookup is returned.
func (c *Card) SetItem(item models.Item) tea.Cmd {
	prev := c.media.TweetID
	c.item = item
	c.desc = content.Describe(item.Type)
	c.media = content.Resolve(item.Type, item.Link)
	if c.media.TweetID == prev {
		return nil
	}
	c.tweet, c.tweetLoaded, c.tweetFailed = nil, false, false
	return c.loadTweet()
}

func (c Card) loadTweet() tea.Cmd {
	id := c.media.TweetID
	if c.media.Kind != content.MediaTweet || c.fetch == nil {
		return nil
	}
	fetch := c.fetch
	return func() tea.Msg {
		t, err := fetch(context.Background(), id)
		return tweetLoadedMsg{id: id, tweet: t, err: err}
	}
}

func (c Card) Update(msg tea.Msg) (Card, tea.Cmd) {
	switch msg := msg.(type) {
	case tweetLoadedMsg:
		if msg.id != c.media.TweetID || c.media.Kind != content.MediaTweet {
			return c, nil
		}
		c.tweetLoaded = true
		c.tweet = msg.tweet
		c.tweetFailed = msg.err != nil || msg.tweet == nil
		return c, nil

	case tea.KeyMsg:
		if !c.selected {
			return c, nil
		}
		if c.confirming {
			switch msg.String() {
			case "y", "Y":
				c.confirming = false
				return c, emit(DeleteIntentMsg{ID: c.item.ID})
			case "n", "N", "esc":
				c.confirming = false
			}
			return c, nil
		}
		if msg.String() == "d" {
			c.confirming = true
		}
	}
	return c, nil
}

func (c Card) View() string {
	var b strings.Builder
	inner := cardWidth - 4

	title := truncate(c.item.Title, inner-4)
	header := c.desc.Icon + " " + lipgloss.NewStyle().Bold(true).Render(title)
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(c.body(inner))
	b.WriteString("\n\n")

	badge := lipgloss.NewStyle().
		Foreground(White).
		Background(c.desc.Badge).
		Padding(0, 1).
		Render(string(c.item.Type))
	b.WriteString(badge)

	if c.confirming {
		b.WriteString("\n")
		b.WriteString(styles.Error.Render("Delete this item? (y/n)"))
	}

	border := lipgloss.NormalBorder()
	st := lipgloss.NewStyle().
		Width(cardWidth).
		Border(border, true, true, true, true).
		BorderForeground(GrayLight).
		BorderLeftForeground(c.desc.Border).
		Padding(0, 1)
	if c.selected {
		st = st.BorderStyle(lipgloss.ThickBorder()).BorderForeground(Purple).BorderLeftForeground(c.desc.Border)
	}
	return st.Render(b.String())
}

func (c Card) body(width int) string {
	link := truncate(c.item.Link, width)
	switch c.media.Kind {
	case content.MediaEmbed:
		return styles.Subtle.Render("▶ player") + "\n" + truncate(c.media.EmbedURL, width)
	case content.MediaTweet:
		switch {
		case !c.tweetLoaded:
			return styles.Placeholder.Render("░░░░░░ loading post ░░░░░░")
		case c.tweetFailed:
			return fmt.Sprintf("%s\n%s", styles.Subtle.Render(c.desc.Label), link)
		default:
			text := lipgloss.NewStyle().Width(width).Render(c.tweet.Text)
			return fmt.Sprintf("%s\n%s", text, styles.Subtle.Render("by "+c.tweet.Author))
		}
	case content.MediaSummary:
		return lipgloss.NewStyle().Foreground(c.desc.Badge).Bold(true).Render(c.desc.Label) +
			"\n" + styles.Subtle.Render(link)
	default:
		return lipgloss.NewStyle().Foreground(c.desc.Badge).Render(c.desc.Label) + "\n" + link
	}
}
