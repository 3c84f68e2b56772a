package cmd

import (
	"os"

	"embedfix/internal/config"
	"embedfix/internal/embed"
	"embedfix/internal/errors"
	"embedfix/internal/models"
	"embedfix/internal/processor"

	"github.com/spf13/cobra"
)

// youtubeCmd represents the youtube command
var youtubeCmd = &cobra.Command{
	Use:   "youtube <directory_path>",
	Short: "Convert YouTube iframes in MDX files to the full-width form",
	Long: `Convert every titled YouTube iframe in the MDX files of a directory tree
to a full-width 16:9 iframe. Iframes without a title attribute are left as they are.

Examples:
  embedfix youtube ./docs
  embedfix youtube ./docs --dry-run`,
	Args: cobra.ArbitraryArgs,
	Run:  runYouTubeCommand,
}

func runYouTubeCommand(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		reporter.Printf("Usage: embedfix youtube <directory_path>")
		os.Exit(1)
	}
	dir := args[0]

	opts := runOptions(config.DefaultWidth, config.DefaultHeight)
	if err := opts.Validate(); err != nil {
		reporter.Error("Error: %v", err)
		os.Exit(1)
	}

	cfg := mustProvider(config.ProviderYouTube)
	p := processor.New(embed.NewYouTubeConverter(), cfg, opts)

	files, err := p.FindFiles(dir)
	if err != nil {
		if errors.IsNotFound(err) {
			reporter.Error("Error: Directory '%s' does not exist.", dir)
		} else {
			reporter.Error("Error: %v", err)
		}
		os.Exit(1)
	}

	reporter.Printf("Processing MDX files in %s and subdirectories...", dir)
	if opts.DryRun {
		reporter.Warn("🔍 Dry run: no files will be written")
	}

	summary := p.ProcessFiles(dir, files, reportYouTubeFile)

	reporter.Printf("\nSummary:")
	reporter.Printf("Files processed: %d", summary.FilesFound)
	reporter.Printf("Files modified: %d", summary.FilesModified)
	if summary.FilesFailed > 0 {
		reporter.Warn("Files with errors: %d", summary.FilesFailed)
	}
}

func reportYouTubeFile(res models.ConversionResult) {
	switch {
	case res.Failed():
		reporter.Error("Error processing %s: %v", res.Path, res.Err)
	case res.Modified && res.DryRun:
		reporter.Warn("Would modify: %s", res.Path)
	case res.Modified:
		reporter.Success("Modified: %s", res.Path)
		if res.BackupPath != "" {
			reporter.Debugf("  backup: %s", res.BackupPath)
		}
	default:
		reporter.Printf("No changes needed: %s", res.Path)
	}
	for _, m := range res.Matches {
		reporter.Debugf("  %s %q", m.VideoID, m.Title)
	}
}

func init() {
	rootCmd.AddCommand(youtubeCmd)
}
