package cmd

import (
	"sort"
	"strings"

	"embedfix/internal/config"
	"embedfix/internal/templates"

	"github.com/spf13/cobra"
)

// providersCmd represents the providers command
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported video providers",
	Long:  `List the video providers embedfix can rewrite, the files each one walks, and (with --verbose) the markup it emits.`,
	Run:   runProvidersCommand,
}

func runProvidersCommand(cmd *cobra.Command, args []string) {
	configs := config.GetProviderConfigs()
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, string(name))
	}
	sort.Strings(names)

	reporter.Printf("Supported providers:")
	reporter.Printf("====================")

	embedTemplates := templates.GetEmbedTemplates()
	for _, name := range names {
		cfg := configs[config.Provider(name)]
		reporter.Printf("\n📦 %s (%s)", cfg.DisplayName, cfg.Name)
		reporter.Printf("   Description: %s", cfg.Description)
		reporter.Printf("   Extensions: %s", strings.Join(cfg.Extensions, ", "))
		if cfg.CountsReplacements {
			reporter.Printf("   Change detection: replacement count")
		} else {
			reporter.Printf("   Change detection: before/after comparison")
		}

		tmpl, ok := embedTemplates[cfg.Template]
		if !ok {
			continue
		}
		reporter.Printf("   Template: %s", tmpl.Name)
		reporter.Debugf("%s", tmpl.Template)
	}

	reporter.Debugf("\nTemplates: %s", strings.Join(templates.ListTemplates(), ", "))
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
