package templates

import (
	"fmt"
	"sort"
	"strings"
)

// EmbedTemplate is the canonical markup a matched embed is rewritten to
type EmbedTemplate struct {
	Name        string
	Description string
	Template    string
	Variables   []string
}

// GetEmbedTemplates returns the replacement templates keyed by name
func GetEmbedTemplates() map[string]EmbedTemplate {
	return map[string]EmbedTemplate{
		"vimeo_iframe": {
			Name:        "Vimeo iframe",
			Description: "Fixed-size Vimeo player with autoplay, fullscreen and picture-in-picture",
			Template: `<iframe
  src="https://player.vimeo.com/video/{{.video_id}}"
  width="{{.width}}"
  height="{{.height}}"
  frameborder="0"
  allow="autoplay; fullscreen; picture-in-picture"
  allowfullscreen>
</iframe>`,
			Variables: []string{"video_id", "width", "height"},
		},
		"youtube_iframe": {
			Name:        "YouTube iframe",
			Description: "Full-width 16:9 YouTube player with rounded corners",
			Template: `<iframe
  className="w-full aspect-video rounded-xl"
  src="https://www.youtube.com/embed/{{.video_id}}"
  title="{{.title}}"
  frameborder="0"
  allowfullscreen>
</iframe>`,
			Variables: []string{"video_id", "title"},
		},
	}
}

// ApplyTemplate fills a template with the given variables.
// All placeholders are substituted in a single pass, so values are inserted
// verbatim and never expanded again.
func ApplyTemplate(templateName string, variables map[string]string) (string, error) {
	templates := GetEmbedTemplates()

	template, exists := templates[templateName]
	if !exists {
		return "", fmt.Errorf("template '%s' not found", templateName)
	}

	pairs := make([]string, 0, len(template.Variables)*2)
	for _, name := range template.Variables {
		value, ok := variables[name]
		if !ok {
			return "", fmt.Errorf("template '%s' is missing variable '%s'", templateName, name)
		}
		pairs = append(pairs, fmt.Sprintf("{{.%s}}", name), value)
	}

	return strings.NewReplacer(pairs...).Replace(template.Template), nil
}

// ListTemplates returns template names in sorted order
func ListTemplates() []string {
	names := make([]string, 0, len(GetEmbedTemplates()))
	for name := range GetEmbedTemplates() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
