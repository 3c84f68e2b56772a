package scan

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"embedfix/internal/config"
	"embedfix/internal/models"
)

// ListEmbeds returns every iframe in a document, in document order.
// The document is parsed as HTML, so surrounding Markdown is treated as text.
func ListEmbeds(document string) ([]models.EmbedInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, err
	}

	var embeds []models.EmbedInfo
	doc.Find("iframe").Each(func(i int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		provider, id := classify(src)
		embeds = append(embeds, models.EmbedInfo{
			Provider:   provider,
			VideoID:    id,
			Src:        src,
			Title:      s.AttrOr("title", ""),
			Width:      s.AttrOr("width", ""),
			Height:     s.AttrOr("height", ""),
			Responsive: inResponsiveWrapper(s),
		})
	})
	return embeds, nil
}

// classify maps an iframe src to a provider name and video ID
func classify(src string) (string, string) {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return "other", ""
	}
	host := strings.ToLower(u.Hostname())
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")

	switch {
	case host == "player.vimeo.com" || host == "vimeo.com":
		if len(parts) >= 2 && parts[0] == "video" {
			return string(config.ProviderVimeo), parts[1]
		}
		return string(config.ProviderVimeo), ""
	case host == "youtube.com" || host == "www.youtube.com":
		if len(parts) >= 2 && parts[0] == "embed" {
			return string(config.ProviderYouTube), parts[1]
		}
		return string(config.ProviderYouTube), ""
	}
	return "other", ""
}

// inResponsiveWrapper reports whether the iframe's parent div carries the
// 56.25% padding shorthand, i.e. the form the vimeo command converts
func inResponsiveWrapper(s *goquery.Selection) bool {
	parent := s.Parent()
	if !parent.Is("div") {
		return false
	}
	style := strings.ReplaceAll(strings.ToLower(parent.AttrOr("style", "")), " ", "")
	return strings.Contains(style, "padding:56.25%")
}

// Summarize counts embeds per provider and how many are still responsive
func Summarize(embeds []models.EmbedInfo) (perProvider map[string]int, responsive int) {
	perProvider = make(map[string]int)
	for _, e := range embeds {
		perProvider[e.Provider]++
		if e.Responsive {
			responsive++
		}
	}
	return perProvider, responsive
}
