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

var (
	vimeoInput  string
	vimeoOutput string
	vimeoDir    string
	vimeoWidth  int
	vimeoHeight int
)

// vimeoCmd represents the vimeo command
var vimeoCmd = &cobra.Command{
	Use:   "vimeo",
	Short: "Convert responsive Vimeo embeds to simple iframes",
	Long: `Convert responsive (padding-wrapped) Vimeo embeds to simple fixed-size iframes.

Examples:
  embedfix vimeo --dir ./actions/
  embedfix vimeo --input file.mdx
  embedfix vimeo --input file.mdx --output fixed_file.mdx --width 640 --height 360`,
	Args: cobra.NoArgs,
	Run:  runVimeoCommand,
}

func runVimeoCommand(cmd *cobra.Command, args []string) {
	opts := runOptions(vimeoWidth, vimeoHeight)
	if err := opts.Validate(); err != nil {
		reporter.Error("❌ %v", err)
		os.Exit(1)
	}

	reporter.Heading("🎬 Vimeo Embed Converter")

	cfg := mustProvider(config.ProviderVimeo)
	p := processor.New(embed.NewVimeoConverter(opts.Width, opts.Height), cfg, opts)

	reporter.Debugf("iframe size: %dx%d", opts.Width, opts.Height)
	if opts.DryRun {
		reporter.Warn("🔍 Dry run: no files will be written")
	}

	switch {
	case vimeoDir != "":
		converted := processVimeoDirectory(p, vimeoDir)
		if converted > 0 {
			reporter.Success("\n🎉 Successfully processed %d files!", converted)
		} else {
			reporter.Info("\n ℹ️ No conversions needed")
		}

	case vimeoInput != "":
		reporter.Printf("📄 Processing %s...", vimeoInput)
		res := p.ProcessFile(vimeoInput, vimeoOutput)
		reportVimeoFile(res)
		if res.Modified {
			reporter.Success("\n🎉 Conversion completed!")
		} else {
			reporter.Info("\n ℹ️ No conversion needed")
		}

	default:
		reporter.Error("❌ Please specify either --dir or --input")
		reporter.Printf("Examples:")
		reporter.Printf("  embedfix vimeo --dir ./actions/")
		reporter.Printf("  embedfix vimeo --input file.mdx")
	}
}

// processVimeoDirectory converts every Markdown file below dir and returns
// the number of files that were converted
func processVimeoDirectory(p *processor.Processor, dir string) int {
	reporter.Printf("📂 Processing directory: %s", dir)

	files, err := p.FindFiles(dir)
	if err != nil {
		if errors.IsNotFound(err) {
			reporter.Error("❌ Directory not found: %s", dir)
		} else {
			reporter.Error("❌ Error reading %s: %v", dir, err)
		}
		return 0
	}
	if len(files) == 0 {
		reporter.Info("  ℹ️  No markdown files found")
		return 0
	}
	reporter.Printf("  📋 Found %d markdown files", len(files))

	summary := p.ProcessFiles(dir, files, func(res models.ConversionResult) {
		reporter.Printf("📄 Processing %s...", res.Path)
		reportVimeoFile(res)
	})

	reporter.Printf("\n📊 Summary:")
	reporter.Printf("  Files processed: %d", summary.FilesFound)
	reporter.Printf("  Files with conversions: %d", summary.FilesModified)
	if summary.FilesFailed > 0 {
		reporter.Warn("  Files with errors: %d", summary.FilesFailed)
	}
	reporter.Debugf("  Embeds converted: %d", summary.EmbedsConverted)

	return summary.FilesModified
}

func reportVimeoFile(res models.ConversionResult) {
	if res.Failed() {
		if errors.IsNotFound(res.Err) {
			reporter.Error("  ❌ File not found: %s", res.Path)
		} else {
			reporter.Error("  ❌ Error processing %s: %v", res.Path, res.Err)
		}
		return
	}

	for _, m := range res.Matches {
		reporter.Success("  ✅ Converting Vimeo video %s", m.VideoID)
	}
	if !res.Modified {
		reporter.Info("  ℹ️  No Vimeo embeds found to convert")
		return
	}

	if res.DryRun {
		reporter.Warn("  🔍 Would convert %d Vimeo embeds in %s", res.Replacements, res.OutputPath)
		return
	}
	reporter.Success("  🎉 Converted %d Vimeo embeds", res.Replacements)
	if res.BackupPath != "" {
		reporter.Printf("  🗂️  Backup saved to %s", res.BackupPath)
	}
	reporter.Printf("  💾 Updated %s", res.OutputPath)
}

// mustProvider returns a built-in provider's configuration
func mustProvider(name config.Provider) config.ProviderConfig {
	cfg, ok := config.GetProviderInfo(string(name))
	if !ok {
		panic("unknown provider " + string(name))
	}
	return cfg
}

func init() {
	rootCmd.AddCommand(vimeoCmd)

	vimeoCmd.Flags().StringVarP(&vimeoInput, "input", "i", "", "Input markdown file")
	vimeoCmd.Flags().StringVarP(&vimeoOutput, "output", "o", "", "Output markdown file (optional, defaults to overwriting the input)")
	vimeoCmd.Flags().StringVarP(&vimeoDir, "dir", "d", "", "Process all markdown files in directory")
	vimeoCmd.Flags().IntVarP(&vimeoWidth, "width", "w", config.DefaultWidth, "iframe width")
	vimeoCmd.Flags().IntVar(&vimeoHeight, "height", config.DefaultHeight, "iframe height")
	// older invocations spell it --ht
	vimeoCmd.Flags().IntVar(&vimeoHeight, "ht", config.DefaultHeight, "iframe height")
	_ = vimeoCmd.Flags().MarkHidden("ht")
}
