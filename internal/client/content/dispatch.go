// Package content maps each content kind to how it is drawn: icon, label,
// colors, input hint and which media renderer applies. Adding a kind means
// adding one entry to descriptors.
package content

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/common"
)

type Descriptor struct {
	Kind   models.Kind
	Label  string
	Icon   string
	Hint   string
	Badge  lipgloss.Color
	Border lipgloss.Color
	// Media is the renderer a card of this kind uses when its link allows.
	Media  MediaKind
}

var descriptors = map[models.Kind]Descriptor{
	models.KindYouTube: {
		Kind:   models.KindYouTube,
		Label:  "YouTube Video",
		Icon:   "▶",
		Hint:   "YouTube video URL (e.g., https://youtube.com/watch?v=...)",
		Badge:  lipgloss.Color("#b91c1c"),
		Border: lipgloss.Color("#ef4444"),
		Media:  MediaEmbed,
	},
	models.KindTwitter: {
		Kind:   models.KindTwitter,
		Label:  "Twitter Post",
		Icon:   "✕",
		Hint:   "Twitter post URL (e.g., https://twitter.com/user/status/...)",
		Badge:  lipgloss.Color("#1d4ed8"),
		Border: lipgloss.Color("#60a5fa"),
		Media:  MediaTweet,
	},
	models.KindDocument: {
		Kind:   models.KindDocument,
		Label:  "Document",
		Icon:   "▤",
		Hint:   "Document URL or identifier",
		Badge:  lipgloss.Color("#b45309"),
		Border: lipgloss.Color("#fbbf24"),
		Media:  MediaSummary,
	},
	models.KindLink: {
		Kind:   models.KindLink,
		Label:  "Web Link",
		Icon:   "↗",
		Hint:   "Web page URL (e.g., https://example.com)",
		Badge:  lipgloss.Color("#15803d"),
		Border: lipgloss.Color("#22c55e"),
		Media:  MediaLink,
	},
	models.KindTag: {
		Kind:   models.KindTag,
		Label:  "Tag",
		Icon:   "#",
		Hint:   "Tag identifier or URL",
		Badge:  lipgloss.Color("#7e22ce"),
		Border: lipgloss.Color("#a855f7"),
		Media:  MediaSummary,
	},
}

// Describe returns the descriptor for k. Unknown kinds get a neutral gray
// descriptor so a bad server value never breaks rendering.
func Describe(k models.Kind) Descriptor {
	if d, ok := descriptors[k]; ok {
		return d
	}
	return Descriptor{
		Kind:   k,
		Label:  string(k),
		Icon:   "•",
		Badge:  lipgloss.Color("#4b5563"),
		Border: lipgloss.Color("#d1d5db"),
		Media:  MediaLink,
	}
}

// MustDescribe is Describe for kinds that must be known.
func MustDescribe(k models.Kind) (Descriptor, error) {
	d, ok := descriptors[k]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", common.ErrUnknownKind, k)
	}
	return d, nil
}
