package cmd

import (
	"fmt"
	"os"
	"sort"

	"embedfix/internal/errors"
	"embedfix/internal/processor"
	"embedfix/internal/scan"

	"github.com/spf13/cobra"
)

var scanExtensions []string

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "List the video embeds found in documentation files",
	Long: `List every iframe in the given files or directories, with its provider,
video ID and size. Embeds still inside a responsive 56.25% wrapper are marked
so you can see what the vimeo command would convert. Nothing is written.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runScanCommand,
}

func runScanCommand(cmd *cobra.Command, args []string) {
	var files []string
	for _, target := range args {
		info, err := os.Stat(target)
		if err != nil {
			reporter.Error("❌ %v", errors.NewNotFoundError("path", target))
			continue
		}
		if !info.IsDir() {
			files = append(files, target)
			continue
		}
		found, err := processor.FindFiles(target, scanExtensions, excludeDirs)
		if err != nil {
			reporter.Error("❌ %v", err)
			continue
		}
		files = append(files, found...)
	}

	var total, responsive int
	perProvider := make(map[string]int)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			reporter.Error("❌ %v", errors.NewFileError("read", path, err))
			continue
		}
		embeds, err := scan.ListEmbeds(string(data))
		if err != nil {
			reporter.Error("❌ Error parsing %s: %v", path, err)
			continue
		}
		if len(embeds) == 0 {
			reporter.Debugf("%s: no embeds", path)
			continue
		}

		reporter.Printf("\n📦 %s", path)
		for _, e := range embeds {
			line := fmt.Sprintf("   %-8s %s", e.Provider, e.Src)
			if e.Title != "" {
				line += fmt.Sprintf(" title=%q", e.Title)
			}
			if e.Width != "" || e.Height != "" {
				line += fmt.Sprintf(" (%sx%s)", e.Width, e.Height)
			}
			if e.Responsive {
				reporter.Warn("%s  ⚠️ responsive wrapper", line)
			} else {
				reporter.Printf("%s", line)
			}
		}

		counts, wrapped := scan.Summarize(embeds)
		for provider, n := range counts {
			perProvider[provider] += n
		}
		total += len(embeds)
		responsive += wrapped
	}

	reporter.Printf("\n📊 Summary:")
	reporter.Printf("  Files scanned: %d", len(files))
	reporter.Printf("  Embeds found: %d", total)
	providers := make([]string, 0, len(perProvider))
	for provider := range perProvider {
		providers = append(providers, provider)
	}
	sort.Strings(providers)
	for _, provider := range providers {
		reporter.Printf("    %s: %d", provider, perProvider[provider])
	}
	if responsive > 0 {
		reporter.Warn("  Responsive embeds to convert: %d", responsive)
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringSliceVar(&scanExtensions, "ext", []string{".md", ".mdx"}, "File extensions to scan in directories")
}
