package config

import (
	"path/filepath"
	"strings"

	"embedfix/internal/errors"
)

// Provider names a supported video host
type Provider string

const (
	ProviderVimeo   Provider = "vimeo"
	ProviderYouTube Provider = "youtube"
)

// Default iframe dimensions for rewritten Vimeo embeds
const (
	DefaultWidth  = 720
	DefaultHeight = 405
)

// ProviderConfig defines how a provider's embeds are found and rewritten
type ProviderConfig struct {
	Name        Provider
	DisplayName string
	Extensions  []string // file extensions walked in directory mode
	Template    string   // name of the replacement template
	Description string
	// CountsReplacements is true when the per-file replacement count decides
	// whether a file was converted, false when only a before/after check does.
	CountsReplacements bool
}

// GetProviderConfigs returns the supported providers
func GetProviderConfigs() map[Provider]ProviderConfig {
	return map[Provider]ProviderConfig{
		ProviderVimeo: {
			Name:               ProviderVimeo,
			DisplayName:        "Vimeo",
			Extensions:         []string{".md", ".mdx"},
			Template:           "vimeo_iframe",
			Description:        "Responsive padding-wrapped player embeds become a fixed-size iframe",
			CountsReplacements: true,
		},
		ProviderYouTube: {
			Name:               ProviderYouTube,
			DisplayName:        "YouTube",
			Extensions:         []string{".mdx"},
			Template:           "youtube_iframe",
			Description:        "Titled embed iframes become a full-width 16:9 iframe",
			CountsReplacements: false,
		},
	}
}

// GetProviderInfo looks a provider up by name, ignoring case
func GetProviderInfo(name string) (ProviderConfig, bool) {
	configs := GetProviderConfigs()
	cfg, ok := configs[Provider(strings.ToLower(strings.TrimSpace(name)))]
	return cfg, ok
}

// HasExtension reports whether path ends in one of exts, ignoring case
func HasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Options holds per-run settings shared by every file in a batch
type Options struct {
	Width       int
	Height      int
	DryRun      bool
	Backup      bool
	ExcludeDirs []string
}

// DefaultOptions returns the options used when no flags are given
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Validate checks the options before any file is touched
func (o Options) Validate() error {
	if o.Width <= 0 {
		return errors.NewValidationError("width", "must be a positive number of pixels")
	}
	if o.Height <= 0 {
		return errors.NewValidationError("height", "must be a positive number of pixels")
	}
	for _, d := range o.ExcludeDirs {
		if strings.ContainsAny(d, `/\`) {
			return errors.NewValidationError("exclude-dir", "expects a directory name, not a path: "+d)
		}
	}
	return nil
}
