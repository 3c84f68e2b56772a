package embed

import (
	"regexp"
	"strconv"

	"embedfix/internal/config"
	"embedfix/internal/models"
)

var (
	// responsive wrapper as emitted by Vimeo's share dialog
	vimeoResponsive = regexp.MustCompile(`(?is)<div\s+style="padding:56\.25%\s+0\s+0\s+0;position:relative;">\s*` +
		`<iframe\s+[^>]*src="https://player\.vimeo\.com/video/(\d+)[^"]*"[^>]*>\s*` +
		`</iframe>\s*` +
		`</div>`)

	// any wrapper div carrying the 56.25% padding somewhere in its attributes
	vimeoResponsiveAlt = regexp.MustCompile(`(?is)<div[^>]*padding:\s*56\.25%[^>]*>\s*` +
		`<iframe[^>]*src="https://player\.vimeo\.com/video/(\d+)[^"]*"[^>]*>\s*` +
		`</iframe>\s*` +
		`</div>`)

	vimeoVideoID = regexp.MustCompile(`vimeo\.com/video/(\d+)`)
)

// VimeoConverter rewrites responsive Vimeo embeds into fixed-size iframes.
// Width and Height apply to every embed it converts.
type VimeoConverter struct {
	Width  int
	Height int
}

// NewVimeoConverter creates a converter emitting iframes of the given size
func NewVimeoConverter(width, height int) *VimeoConverter {
	return &VimeoConverter{Width: width, Height: height}
}

// Provider returns the provider name
func (c *VimeoConverter) Provider() string {
	return string(config.ProviderVimeo)
}

// ExtractVideoID returns the video ID of an isolated embed snippet, or "" if
// none is found. The wrapper patterns are tried first, then a bare player URL.
func (c *VimeoConverter) ExtractVideoID(snippet string) string {
	for _, re := range []*regexp.Regexp{vimeoResponsive, vimeoResponsiveAlt, vimeoVideoID} {
		if m := re.FindStringSubmatch(snippet); m != nil {
			return m[1]
		}
	}
	return ""
}

// CreateSimpleIframe builds the replacement iframe for a video ID
func (c *VimeoConverter) CreateSimpleIframe(videoID string) string {
	return mustApplyTemplate("vimeo_iframe", map[string]string{
		"video_id": videoID,
		"width":    strconv.Itoa(c.Width),
		"height":   strconv.Itoa(c.Height),
	})
}

// Convert replaces every responsive embed in text and returns the new text
// together with one match per replaced embed.
func (c *VimeoConverter) Convert(text string) (string, []models.EmbedMatch) {
	var matches []models.EmbedMatch
	replace := func(groups []string) string {
		matches = append(matches, models.EmbedMatch{Provider: c.Provider(), VideoID: groups[1]})
		return c.CreateSimpleIframe(groups[1])
	}

	text = replaceSubmatches(vimeoResponsive, text, replace)
	text = replaceSubmatches(vimeoResponsiveAlt, text, replace)
	return text, matches
}
