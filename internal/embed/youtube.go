package embed

import (
	"regexp"

	"embedfix/internal/config"
	"embedfix/internal/models"
)

var (
	// an iframe element with a YouTube embed src, through its first closing tag
	youtubeElement = regexp.MustCompile(`(?is)<iframe\b([^>]*?\ssrc\s*=\s*"https?://(?:www\.)?youtube\.com/embed/[^"]*"[^>]*)>.*?</iframe>`)

	// the ID must be exactly 11 characters, optionally followed by query or path parts
	youtubeSrc   = regexp.MustCompile(`(?i)\ssrc\s*=\s*"https?://(?:www\.)?youtube\.com/embed/([a-z0-9_-]{11})(?:[?&#/][^"]*)?"`)
	youtubeTitle = regexp.MustCompile(`(?i)\stitle\s*=\s*"([^"]*)"`)
)

// YouTubeConverter rewrites titled YouTube iframes into the full-width form.
// Iframes without a title attribute are left as they are.
type YouTubeConverter struct{}

// NewYouTubeConverter creates a YouTube converter
func NewYouTubeConverter() *YouTubeConverter {
	return &YouTubeConverter{}
}

// Provider returns the provider name
func (c *YouTubeConverter) Provider() string {
	return string(config.ProviderYouTube)
}

// Match extracts the video ID and title from the attributes of one iframe
// opening tag. ok is false unless both are present and the ID is well formed.
func (c *YouTubeConverter) Match(attrs string) (match models.EmbedMatch, ok bool) {
	src := youtubeSrc.FindStringSubmatch(attrs)
	if src == nil {
		return models.EmbedMatch{}, false
	}
	title := youtubeTitle.FindStringSubmatch(attrs)
	if title == nil {
		return models.EmbedMatch{}, false
	}
	return models.EmbedMatch{Provider: c.Provider(), VideoID: src[1], Title: title[1]}, true
}

// CreateIframe builds the replacement iframe for a video ID and title
func (c *YouTubeConverter) CreateIframe(videoID, title string) string {
	return mustApplyTemplate("youtube_iframe", map[string]string{
		"video_id": videoID,
		"title":    title,
	})
}

// Convert rewrites every titled YouTube iframe in text. Only embeds whose
// markup actually changed are returned, so already converted iframes do not
// count.
func (c *YouTubeConverter) Convert(text string) (string, []models.EmbedMatch) {
	var matches []models.EmbedMatch
	text = replaceSubmatches(youtubeElement, text, func(groups []string) string {
		m, ok := c.Match(" " + groups[1])
		if !ok {
			return groups[0]
		}
		out := c.CreateIframe(m.VideoID, m.Title)
		if out != groups[0] {
			matches = append(matches, m)
		}
		return out
	})
	return text, matches
}
